package services

import (
	"sapling/internal/models"
	"sapling/internal/repositories"
)

// PlantService handles business logic related to the plant catalog.
type PlantService struct {
	repo repositories.PlantRepository
}

// NewPlantService creates a new PlantService.
func NewPlantService(repo repositories.PlantRepository) *PlantService {
	return &PlantService{
		repo: repo,
	}
}

// GetAllPlants retrieves the whole catalog.
func (s *PlantService) GetAllPlants() ([]models.Plant, error) {
	return s.repo.GetAll()
}

// GetPlantByID retrieves a single plant by its ID.
func (s *PlantService) GetPlantByID(id string) (*models.Plant, error) {
	return s.repo.GetByID(id)
}

// CreatePlant adds a plant to the catalog. Admin-only at the API surface.
func (s *PlantService) CreatePlant(plant *models.Plant) error {
	return s.repo.Create(plant)
}

// UpdatePlant updates an existing plant.
func (s *PlantService) UpdatePlant(plant *models.Plant) error {
	return s.repo.Update(plant)
}

// DeletePlant deletes a plant by its ID. Cart lines referencing it are left
// in place and surface as depleted when read.
func (s *PlantService) DeletePlant(id string) error {
	return s.repo.Delete(id)
}
