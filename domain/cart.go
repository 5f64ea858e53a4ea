package domain

import (
	"errors"
)

var (
	MessageSuccessAddCartItem    = "item added to cart successfully"
	MessageSuccessUpdateCartLine = "cart line updated successfully"
	MessageSuccessRemoveCartLine = "cart line removed successfully"
	MessageSuccessClearCart      = "cart cleared successfully"
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessGetCartSummary = "cart summary retrieved successfully"

	MessageFailedAddCartItem    = "failed to add item to cart"
	MessageFailedUpdateCartLine = "failed to update cart line"
	MessageFailedRemoveCartLine = "failed to remove cart line"
	MessageFailedClearCart      = "failed to clear cart"
	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedGetCartSummary = "failed to retrieve cart summary"

	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrLineNotFound      = errors.New("cart line not found")
	ErrInvalidSpiceLevel = errors.New("unknown spice level")
	ErrInvalidExtraGroup = errors.New("unknown extra group")
)

type (
	// CartExtraRequest selects one item from a grouped extra (sides, dip/sauce).
	CartExtraRequest struct {
		Group     string  `json:"group" validate:"required,oneof=sides dip_sauce"`
		Label     string  `json:"label" validate:"required"`
		UnitPrice float64 `json:"unit_price" validate:"gte=0"`
		Quantity  int     `json:"quantity" validate:"required,min=1"`
	}

	// CustomizationRequest is the full set of choices for one cart line.
	CustomizationRequest struct {
		ExtraCheese         bool               `json:"extra_cheese"`
		ExtraMeat           bool               `json:"extra_meat"`
		ExtraVeggies        bool               `json:"extra_veggies"`
		NoOnions            bool               `json:"no_onions"`
		NoGarlic            bool               `json:"no_garlic"`
		GlutenFree          bool               `json:"gluten_free"`
		SpiceLevel          string             `json:"spice_level" validate:"omitempty"`
		SpecialInstructions string             `json:"special_instructions" validate:"omitempty,max=500"`
		Extras              []CartExtraRequest `json:"extras" validate:"omitempty,dive"`
	}

	AddCartItemRequest struct {
		MenuItemID    string               `json:"menu_item_id" validate:"required,uuid"`
		Quantity      int                  `json:"quantity" validate:"required,min=1"`
		Customization CustomizationRequest `json:"customization"`
	}

	AddCartItemResponse struct {
		LineID   string `json:"line_id"`
		Quantity int    `json:"quantity"`
		Merged   bool   `json:"merged"`
	}

	UpdateCartLineRequest struct {
		Quantity int `json:"quantity"`
	}

	CartExtraView struct {
		Group     string  `json:"group"`
		Label     string  `json:"label"`
		UnitPrice float64 `json:"unit_price"`
		Quantity  int     `json:"quantity"`
	}

	CartLineView struct {
		LineID              string          `json:"line_id"`
		MenuItemID          string          `json:"menu_item_id"`
		Name                string          `json:"name"`
		ImageURL            string          `json:"image_url,omitempty"`
		BasePrice           float64         `json:"base_price"`
		ExtraCheese         bool            `json:"extra_cheese"`
		ExtraMeat           bool            `json:"extra_meat"`
		ExtraVeggies        bool            `json:"extra_veggies"`
		NoOnions            bool            `json:"no_onions"`
		NoGarlic            bool            `json:"no_garlic"`
		GlutenFree          bool            `json:"gluten_free"`
		SpiceLevel          string          `json:"spice_level"`
		SpecialInstructions string          `json:"special_instructions,omitempty"`
		Extras              []CartExtraView `json:"extras,omitempty"`
		Quantity            int             `json:"quantity"`
		UnitPrice           float64         `json:"unit_price"`
		LineTotal           float64         `json:"line_total"`
	}

	CartSummaryResponse struct {
		Subtotal    float64 `json:"subtotal"`
		DeliveryFee float64 `json:"delivery_fee"`
		Tax         float64 `json:"tax"`
		GrandTotal  float64 `json:"grand_total"`
	}
)
