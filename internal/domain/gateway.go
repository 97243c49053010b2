package domain

import "context"

type CreatePaymentRequest struct {
	PriceAmount      float64
	PriceCurrency    string
	PayCurrency      string
	OrderReference   string
	OrderDescription string
}

// CreatePaymentResult carries the fields the gateway is contractually required
// to return. The client rejects responses missing any of the first four.
type CreatePaymentResult struct {
	PaymentID   string
	PayAddress  string
	PayAmount   float64
	PayCurrency string
	Status      PaymentStatus
	PaymentURL  string
}

type PaymentGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error)
}
