package order

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/entities"
	"KhajaGhar-Backend/internal/utils/mailing"
	"KhajaGhar-Backend/pkg/cart"
	"KhajaGhar-Backend/pkg/payment"
	"KhajaGhar-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error)
		GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*domain.OrderResponse, int64, error)
		GetOrderByID(ctx context.Context, orderID string, userID string) (*domain.OrderResponse, error)
		HandleMidtransNotification(ctx context.Context, notif domain.MidtransNotification) error
	}

	orderService struct {
		orderRepository OrderRepository
		cartService     cart.CartService
		userService     user.UserService
		paymentService  payment.PaymentService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	cartService cart.CartService,
	userService user.UserService,
	paymentService payment.PaymentService,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartService:     cartService,
		userService:     userService,
		paymentService:  paymentService,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	lines, err := s.cartService.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	summary, err := s.cartService.Summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New()
	items := make([]*entities.OrderItem, 0, len(lines))
	for _, line := range lines {
		menuItemUUID, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		extras := make([]entities.CartLineExtra, 0, len(line.Extras))
		for _, extra := range line.Extras {
			extras = append(extras, entities.CartLineExtra{
				Group:     extra.Group,
				Label:     extra.Label,
				UnitPrice: extra.UnitPrice,
				Quantity:  extra.Quantity,
			})
		}
		items = append(items, &entities.OrderItem{
			ID:         uuid.New(),
			OrderID:    orderID,
			MenuItemID: menuItemUUID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			LineTotal:  line.LineTotal,
			Selection: entities.OrderItemSelection{
				ExtraCheese:         line.ExtraCheese,
				ExtraMeat:           line.ExtraMeat,
				ExtraVeggies:        line.ExtraVeggies,
				NoOnions:            line.NoOnions,
				NoGarlic:            line.NoGarlic,
				GlutenFree:          line.GlutenFree,
				SpiceLevel:          line.SpiceLevel,
				SpecialInstructions: line.SpecialInstructions,
				Extras:              extras,
			},
		})
	}

	paymentStatus := domain.PaymentStatusUnpaid
	order := &entities.Order{
		ID:              orderID,
		UserID:          userUUID,
		Status:          domain.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   paymentStatus,
		DeliveryAddress: req.DeliveryAddress,
		Subtotal:        summary.Subtotal,
		DeliveryFee:     summary.DeliveryFee,
		Tax:             summary.Tax,
		GrandTotal:      summary.GrandTotal,
		Items:           items,
	}

	if err := s.orderRepository.CreateOrderAndClearCart(ctx, order, userID); err != nil {
		return nil, err
	}

	me, err := s.userService.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	paymentURL := ""
	if req.PaymentMethod == domain.PaymentMethodOnline {
		paymentURL, err = s.paymentService.CreateTransaction(orderID.String(), grossAmount(summary.GrandTotal), me.Email)
		if err != nil {
			return nil, err
		}
		if err := s.orderRepository.UpdatePaymentURL(ctx, orderID.String(), paymentURL, domain.PaymentStatusPending); err != nil {
			return nil, err
		}
	}

	// Confirmation mail is best effort; a mail outage must not fail the order.
	go func() {
		subject := "Your KhajaGhar order is confirmed"
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your order <b>%s</b> has been placed. Grand total: Rs %.2f.</p>",
			me.Name, orderID.String(), summary.GrandTotal,
		)
		if err := mailing.SendMail(me.Email, subject, body); err != nil {
			log.Errorf("order confirmation mail failed: %v", err)
		}
	}()

	return &domain.PlaceOrderResponse{
		OrderID:    orderID.String(),
		GrandTotal: summary.GrandTotal,
		PaymentURL: paymentURL,
	}, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*domain.OrderResponse, int64, error) {
	orders, count, err := s.orderRepository.GetUserOrders(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, orderResponse(o))
	}
	return result, count, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string, userID string) (*domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID.String() != userID {
		return nil, domain.ErrOrderNotFound
	}
	return orderResponse(order), nil
}

func (s *orderService) HandleMidtransNotification(ctx context.Context, notif domain.MidtransNotification) error {
	var status string
	switch notif.TransactionStatus {
	case "capture", "settlement":
		status = domain.PaymentStatusPaid
	case "deny", "cancel", "expire", "failure":
		status = domain.PaymentStatusFailed
	default:
		status = domain.PaymentStatusPending
	}

	if err := s.orderRepository.UpdatePaymentStatus(ctx, notif.OrderID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	return nil
}

// grossAmount converts the grand total to the whole-currency amount midtrans
// expects. Rounded to nearest, not truncated, so Rs 163.99 charges 164.
func grossAmount(total float64) int64 {
	return int64(math.Round(total))
}

func orderResponse(o *entities.Order) *domain.OrderResponse {
	items := make([]domain.OrderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		extras := make([]domain.CartExtraView, 0, len(item.Selection.Extras))
		for _, extra := range item.Selection.Extras {
			extras = append(extras, domain.CartExtraView{
				Group:     extra.Group,
				Label:     extra.Label,
				UnitPrice: extra.UnitPrice,
				Quantity:  extra.Quantity,
			})
		}
		items = append(items, domain.OrderItemView{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
			Extras:     extras,
		})
	}

	return &domain.OrderResponse{
		ID:              o.ID.String(),
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		PaymentURL:      o.PaymentURL,
		DeliveryAddress: o.DeliveryAddress,
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Tax:             o.Tax,
		GrandTotal:      o.GrandTotal,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}
