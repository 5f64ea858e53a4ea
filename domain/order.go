package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder = "order placed successfully"
	MessageSuccessGetOrders  = "orders retrieved successfully"
	MessageSuccessGetOrder   = "order retrieved successfully"

	MessageFailedPlaceOrder = "failed to place order"
	MessageFailedGetOrders  = "failed to retrieve orders"
	MessageFailedGetOrder   = "failed to retrieve order"
	MessageFailedWebhook    = "failed to process payment notification"

	ErrCartEmpty            = errors.New("cart is empty")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentFailed        = errors.New("payment processing failed")
)

const (
	PaymentMethodCash   = "Cash"
	PaymentMethodOnline = "Online"

	PaymentStatusUnpaid  = "Unpaid"
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"

	OrderStatusPending   = "Pending"
	OrderStatusCancelled = "Cancelled"
)

type (
	PlaceOrderRequest struct {
		PaymentMethod   string `json:"payment_method" validate:"required,oneof=Cash Online"`
		DeliveryAddress string `json:"delivery_address" validate:"required"`
	}

	PlaceOrderResponse struct {
		OrderID    string  `json:"order_id"`
		GrandTotal float64 `json:"grand_total"`
		PaymentURL string  `json:"payment_url,omitempty"`
	}

	OrderItemView struct {
		MenuItemID string          `json:"menu_item_id"`
		Name       string          `json:"name"`
		UnitPrice  float64         `json:"unit_price"`
		Quantity   int             `json:"quantity"`
		LineTotal  float64         `json:"line_total"`
		Extras     []CartExtraView `json:"extras,omitempty"`
	}

	OrderResponse struct {
		ID              string          `json:"id"`
		Status          string          `json:"status"`
		PaymentMethod   string          `json:"payment_method"`
		PaymentStatus   string          `json:"payment_status"`
		PaymentURL      string          `json:"payment_url,omitempty"`
		DeliveryAddress string          `json:"delivery_address"`
		Subtotal        float64         `json:"subtotal"`
		DeliveryFee     float64         `json:"delivery_fee"`
		Tax             float64         `json:"tax"`
		GrandTotal      float64         `json:"grand_total"`
		Items           []OrderItemView `json:"items,omitempty"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
