package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	Status          string    `json:"status"` // Pending, Preparing, OnTheWay, Delivered, Cancelled
	PaymentMethod   string    `json:"payment_method"` // Cash, Online
	PaymentStatus   string    `json:"payment_status"` // Unpaid, Pending, Paid, Failed
	PaymentURL      string    `json:"payment_url,omitempty"`
	DeliveryAddress string    `json:"delivery_address"`
	Subtotal        float64   `json:"subtotal"`
	DeliveryFee     float64   `json:"delivery_fee"`
	Tax             float64   `json:"tax"`
	GrandTotal      float64   `json:"grand_total"`

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItemSelection snapshots the cart line customization at checkout time so
// order history survives later catalog or menu changes.
type OrderItemSelection struct {
	ExtraCheese         bool            `json:"extra_cheese"`
	ExtraMeat           bool            `json:"extra_meat"`
	ExtraVeggies        bool            `json:"extra_veggies"`
	NoOnions            bool            `json:"no_onions"`
	NoGarlic            bool            `json:"no_garlic"`
	GlutenFree          bool            `json:"gluten_free"`
	SpiceLevel          string          `json:"spice_level"`
	SpecialInstructions string          `json:"special_instructions"`
	Extras              []CartLineExtra `json:"extras,omitempty"`
}

type OrderItem struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID    uuid.UUID          `gorm:"index" json:"order_id"`
	MenuItemID uuid.UUID          `json:"menu_item_id"`
	Name       string             `json:"name"`
	UnitPrice  float64            `json:"unit_price"`
	Quantity   int                `json:"quantity"`
	LineTotal  float64            `json:"line_total"`
	Selection  OrderItemSelection `gorm:"type:jsonb;serializer:json" json:"selection"`

	Order    *Order    `gorm:"foreignKey:OrderID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
	Timestamp
}
