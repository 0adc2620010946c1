package repositories

import (
	"fmt"
	"sync"

	"sapling/internal/models"

	"github.com/google/uuid"
)

// MockPlantRepository is an in-memory implementation of PlantRepository.
type MockPlantRepository struct {
	plants map[string]models.Plant
	mu     sync.RWMutex
}

// NewMockPlantRepository creates a new instance of MockPlantRepository.
func NewMockPlantRepository() *MockPlantRepository {
	return &MockPlantRepository{
		plants: make(map[string]models.Plant),
	}
}

// GetAll returns all plants.
func (r *MockPlantRepository) GetAll() ([]models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plantList := make([]models.Plant, 0, len(r.plants))
	for _, p := range r.plants {
		plantList = append(plantList, p)
	}
	return plantList, nil
}

// GetByID returns a plant by its ID.
func (r *MockPlantRepository) GetByID(id string) (*models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plant, ok := r.plants[id]
	if !ok {
		return nil, fmt.Errorf("plant with ID %s: %w", id, models.ErrNotFound)
	}
	return &plant, nil
}

// Create adds a new plant.
func (r *MockPlantRepository) Create(plant *models.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if plant.ID == "" {
		plant.ID = uuid.New().String()
	}
	r.plants[plant.ID] = *plant
	return nil
}

// Update modifies an existing plant.
func (r *MockPlantRepository) Update(plant *models.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.plants[plant.ID]
	if !ok {
		return fmt.Errorf("plant with ID %s for update: %w", plant.ID, models.ErrNotFound)
	}
	r.plants[plant.ID] = *plant
	return nil
}

// Delete removes a plant by its ID.
func (r *MockPlantRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.plants[id]
	if !ok {
		return fmt.Errorf("plant with ID %s for deletion: %w", id, models.ErrNotFound)
	}
	delete(r.plants, id)
	return nil
}
