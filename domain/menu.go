package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddMenuItem    = "menu item added successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"
	MessageSuccessGetMenuItems   = "menu items retrieved successfully"
	MessageSuccessUploadImage    = "menu item image uploaded successfully"

	MessageFailedAddMenuItem    = "failed to add menu item"
	MessageFailedUpdateMenuItem = "failed to update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"
	MessageFailedGetMenuItems   = "failed to retrieve menu items"
	MessageFailedUploadImage    = "failed to upload menu item image"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("menu item price must not be negative")
)

type (
	AddMenuItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description" validate:"omitempty"`
		Price       float64 `json:"price" validate:"required,gte=0"`
		Category    string  `json:"category" validate:"required"`
	}

	UpdateMenuItemRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Description string  `json:"description" validate:"omitempty"`
		Price       float64 `json:"price" validate:"omitempty,gte=0"`
		Category    string  `json:"category" validate:"omitempty"`
		IsAvailable *bool   `json:"is_available" validate:"omitempty"`
	}

	UploadMenuImageRequest struct {
		MenuItemID string                `json:"menu_item_id" form:"menu_item_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MenuItemResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		Price       float64   `json:"price"`
		Category    string    `json:"category"`
		Rating      float64   `json:"rating,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		IsAvailable bool      `json:"is_available"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
