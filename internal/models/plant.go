package models

import "gorm.io/gorm"

// Plant represents a plant in the nursery catalog.
// Price is stored in minor currency units (paise) so cart totals stay
// integral; never use floating point for money.
type Plant struct {
	ID               string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Category         string `json:"category" validate:"required,max=100"`
	Price            int64  `json:"price" validate:"required,gt=0"`
	Description      string `json:"description" validate:"omitempty,max=1000"`
	ImageURL         string `json:"imageUrl" validate:"omitempty,url"`
	CareInstructions string `json:"careInstructions" validate:"omitempty,max=2000"`
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
