package menu

import (
	"KhajaGhar-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		AddMenuItem(ctx context.Context, item *entities.MenuItem) error
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error
		GetMenuItems(ctx context.Context, category string, page, limit int) ([]*entities.MenuItem, int64, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{}).Error
}

func (r *menuRepository) GetMenuItems(ctx context.Context, category string, page, limit int) ([]*entities.MenuItem, int64, error) {
	var items []*entities.MenuItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("is_available = ?", true)
	if category != "all" && category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Model(&entities.MenuItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}
