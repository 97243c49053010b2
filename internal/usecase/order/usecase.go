package usecase

import (
	"context"
	"time"

	"github.com/streamvault/payment-service/internal/domain"
	"github.com/streamvault/payment-service/internal/infrastructure/metrics"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, input *orderdto.CreatePaymentInput) (*orderdto.PaymentOutput, error)
	ProcessWebhook(ctx context.Context, input *orderdto.WebhookInput) error
	GetOrderStatus(paymentID string) (*orderdto.OrderStatusOutput, error)
	GetOrders(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error)
	OverrideOrderStatus(paymentID string, newStatus domain.PaymentStatus) error
	ExpireOverdueOrders(ctx context.Context) (int, error)
}

// Settings are the payment policy knobs resolved from config at startup.
type Settings struct {
	SettlementCurrency string
	DefaultPayCurrency string
	OrderTTL           time.Duration
	PriceCeiling       float64
	ActivationTopic    string
	FailureTopic       string
}

type DefaultPaymentUsecase struct {
	OrderRepo domain.OrderRepository
	Gateway   domain.PaymentGateway
	Publisher domain.PublisherPort
	Mailer    domain.CredentialSender
	Metrics   *metrics.PaymentMetrics
	Settings  Settings
}

func NewDefaultPaymentUsecase(
	orderRepo domain.OrderRepository,
	gateway domain.PaymentGateway,
	pub domain.PublisherPort,
	mailer domain.CredentialSender,
	paymentMetrics *metrics.PaymentMetrics,
	settings Settings) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Publisher: pub,
		Mailer:    mailer,
		Metrics:   paymentMetrics,
		Settings:  settings,
	}
}
