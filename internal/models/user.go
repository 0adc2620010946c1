package models

import "gorm.io/gorm"

// Role is an account's authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Satisfies reports whether a holder of r may act as required.
// An admin may do anything a user can; the reverse does not hold.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}

// CartLine is one (plant, quantity) pair in a user's cart. PlantID is a weak
// reference: its validity is checked when the cart is read or checked out,
// not when the line is written. Quantity is always >= 1 in a stored cart.
type CartLine struct {
	PlantID  string `json:"plantId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// User represents a storefront account. The cart is embedded in the user row
// as a JSON document, so the account record owns its cart like the rest of
// its fields: one row, one aggregate.
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string     `json:"username" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialised
	Role       Role       `json:"role" gorm:"type:varchar(20);default:user"`
	Cart       []CartLine `json:"cart" gorm:"serializer:json"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
