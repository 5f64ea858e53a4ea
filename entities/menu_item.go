package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"` // "Pizza", "Burger", "Momo", "Drinks", ...
	Rating      float64   `json:"rating,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	Timestamp
}
