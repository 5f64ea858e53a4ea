package order

import (
	"KhajaGhar-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		// CreateOrderAndClearCart snapshots the order (with its items) and
		// empties the user's cart in a single transaction, so a failed order
		// leaves the cart untouched.
		CreateOrderAndClearCart(ctx context.Context, order *entities.Order, userID string) error

		GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
		GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error)
		UpdatePaymentURL(ctx context.Context, orderID string, url string, status string) error
		UpdatePaymentStatus(ctx context.Context, orderID string, status string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrderAndClearCart(ctx context.Context, order *entities.Order, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&entities.CartLine{}).Error
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if err := query.Model(&entities.Order{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *orderRepository) UpdatePaymentURL(ctx context.Context, orderID string, url string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{"payment_url": url, "payment_status": status}).Error
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status string) error {
	res := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
