package repositories

import (
	"sapling/internal/models"
)

// PlantRepository defines the interface for catalog data access.
type PlantRepository interface {
	GetAll() ([]models.Plant, error)
	GetByID(id string) (*models.Plant, error)
	Create(plant *models.Plant) error
	Update(plant *models.Plant) error
	Delete(id string) error
}
