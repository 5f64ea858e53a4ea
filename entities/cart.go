package entities

import (
	"github.com/google/uuid"
)

// CartLineExtra is one grouped extra (a side or a dip/sauce) attached to a cart
// line. It is persisted as a structured record, never as a display string.
type CartLineExtra struct {
	Group     string  `json:"group"` // "sides" or "dip_sauce"
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type CartLine struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"index" json:"user_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`

	// Customization flags
	ExtraCheese  bool `json:"extra_cheese"`
	ExtraMeat    bool `json:"extra_meat"`
	ExtraVeggies bool `json:"extra_veggies"`
	NoOnions     bool `json:"no_onions"`
	NoGarlic     bool `json:"no_garlic"`
	GlutenFree   bool `json:"gluten_free"`

	SpiceLevel          string          `json:"spice_level"`
	SpecialInstructions string          `gorm:"type:text" json:"special_instructions"`
	Extras              []CartLineExtra `gorm:"type:jsonb;serializer:json" json:"extras,omitempty"`

	User     *User     `gorm:"foreignKey:UserID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
	Timestamp
}
