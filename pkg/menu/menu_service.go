package menu

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/entities"
	"KhajaGhar-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (*domain.MenuItemResponse, error)
		GetMenuItemByID(ctx context.Context, id string) (*domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id string) error
		GetMenuItems(ctx context.Context, category string, page, limit int) ([]*domain.MenuItemResponse, int64, error)
		UploadMenuImage(ctx context.Context, req domain.UploadMenuImageRequest) error
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (*domain.MenuItemResponse, error) {
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: true,
	}

	if err := s.menuRepository.AddMenuItem(ctx, item); err != nil {
		return nil, err
	}

	return menuItemResponse(item), nil
}

func (s *menuService) GetMenuItemByID(ctx context.Context, id string) (*domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return menuItemResponse(item), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != 0 {
		if req.Price < 0 {
			return domain.ErrInvalidPrice
		}
		item.Price = req.Price
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	return s.menuRepository.UpdateMenuItem(ctx, item)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := s.menuRepository.GetMenuItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) GetMenuItems(ctx context.Context, category string, page, limit int) ([]*domain.MenuItemResponse, int64, error) {
	items, count, err := s.menuRepository.GetMenuItems(ctx, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, menuItemResponse(item))
	}
	return result, count, nil
}

func (s *menuService) UploadMenuImage(ctx context.Context, req domain.UploadMenuImageRequest) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("menu-%s", item.ID.String()),
		req.Image,
		"menu",
		storage.AllowImage...,
	)
	if err != nil {
		return err
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.menuRepository.UpdateMenuItem(ctx, item)
}

func menuItemResponse(item *entities.MenuItem) *domain.MenuItemResponse {
	return &domain.MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Rating:      item.Rating,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
	}
}
