package repositories

import "sapling/internal/models"

// UserRepository defines the interface for account data access.
//
// UpdateCart is the only write path for a user's cart: it replaces the
// embedded cart document in a single column update, so the cart aggregate has
// exactly one mutation entry point at the storage layer.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateCart(id string, cart []models.CartLine) error
}
