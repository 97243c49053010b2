package orderdto

import (
	"time"

	"github.com/streamvault/payment-service/internal/domain"
)

// PaymentOutput carries the public payment fields returned to the checkout
// client right after creation.
type PaymentOutput struct {
	OrderID     string
	PaymentID   string
	PayAddress  string
	PayAmount   float64
	PayCurrency string
	PaymentURL  string
}

// OrderStatusOutput is the order view exposed to the polling front end.
type OrderStatusOutput struct {
	PaymentID     string
	PaymentStatus domain.PaymentStatus
	PayAddress    string
	PayAmount     float64
	PayCurrency   string
	PaymentURL    string
	ExpiresAt     time.Time
	Email         string
	PlanName      string
}

func ToOrderStatusOutput(order *domain.Order) *OrderStatusOutput {
	return &OrderStatusOutput{
		PaymentID:     order.PaymentInfo.PaymentID,
		PaymentStatus: order.Status,
		PayAddress:    order.PaymentInfo.PayAddress,
		PayAmount:     order.PaymentInfo.PayAmount,
		PayCurrency:   order.PaymentInfo.PayCurrency,
		PaymentURL:    order.PaymentInfo.PaymentURL,
		ExpiresAt:     order.ExpiresAt,
		Email:         order.CustomerInfo.Email,
		PlanName:      order.PlanInfo.PlanName,
	}
}
