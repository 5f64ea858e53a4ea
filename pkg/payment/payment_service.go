package payment

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/internal/utils"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentService wraps the Midtrans Snap API: one call per order that
	// returns the hosted payment page URL.
	PaymentService interface {
		CreateTransaction(orderID string, grossAmount int64, email string) (string, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreateTransaction(orderID string, grossAmount int64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := s.client.CreateTransaction(req)
	if err != nil {
		return "", domain.ErrPaymentFailed
	}
	return resp.RedirectURL, nil
}
