package repositories

import (
	"errors"
	"fmt"

	"sapling/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPlantRepository is a GORM implementation of PlantRepository.
type GORMPlantRepository struct {
	db *gorm.DB
}

// NewGORMPlantRepository creates a new instance of GORMPlantRepository.
func NewGORMPlantRepository(db *gorm.DB) *GORMPlantRepository {
	return &GORMPlantRepository{
		db: db,
	}
}

// GetAll retrieves all plants from the database.
func (r *GORMPlantRepository) GetAll() ([]models.Plant, error) {
	var plants []models.Plant
	if err := r.db.Find(&plants).Error; err != nil {
		return nil, fmt.Errorf("failed to get all plants: %w", err)
	}
	return plants, nil
}

// GetByID retrieves a single plant by its ID from the database.
func (r *GORMPlantRepository) GetByID(id string) (*models.Plant, error) {
	var plant models.Plant
	if err := r.db.First(&plant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plant with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get plant by ID %s: %w", id, err)
	}
	return &plant, nil
}

// Create creates a new plant in the database.
func (r *GORMPlantRepository) Create(plant *models.Plant) error {
	if plant.ID == "" {
		plant.ID = uuid.New().String()
	}
	if err := r.db.Create(plant).Error; err != nil {
		return fmt.Errorf("failed to create plant: %w", err)
	}
	return nil
}

// Update updates an existing plant in the database.
func (r *GORMPlantRepository) Update(plant *models.Plant) error {
	res := r.db.Save(plant) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update plant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save does not return ErrRecordNotFound when no rows match,
		// so we check RowsAffected.
		return fmt.Errorf("plant with ID %s for update: %w", plant.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a plant by its ID from the database.
func (r *GORMPlantRepository) Delete(id string) error {
	res := r.db.Delete(&models.Plant{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete plant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("plant with ID %s for deletion: %w", id, models.ErrNotFound)
	}
	return nil
}
