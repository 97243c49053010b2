package usecase

import (
	"context"
	"time"

	"github.com/streamvault/payment-service/internal/domain"
)

type mockOrderRepo struct {
	CreateOrderFunc         func(order *domain.Order) error
	GetOrderByPaymentIDFunc func(paymentID string) (*domain.Order, error)
	UpdateOrderStatusFunc   func(paymentID string, newStatus domain.PaymentStatus, activatedAt *time.Time) error
	ForceOrderStatusFunc    func(paymentID string, newStatus domain.PaymentStatus, activatedAt *time.Time) error
	MarkExpiredFunc         func(paymentID string) (bool, error)
	GetOrdersFunc           func(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error)
	FindExpiredOrdersFunc   func() ([]*domain.Order, error)
}

func (m *mockOrderRepo) CreateOrder(order *domain.Order) error {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(order)
	}
	return nil
}

func (m *mockOrderRepo) GetOrderByPaymentID(paymentID string) (*domain.Order, error) {
	if m.GetOrderByPaymentIDFunc != nil {
		return m.GetOrderByPaymentIDFunc(paymentID)
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderRepo) UpdateOrderStatus(paymentID string, newStatus domain.PaymentStatus, activatedAt *time.Time) error {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(paymentID, newStatus, activatedAt)
	}
	return nil
}

func (m *mockOrderRepo) ForceOrderStatus(paymentID string, newStatus domain.PaymentStatus, activatedAt *time.Time) error {
	if m.ForceOrderStatusFunc != nil {
		return m.ForceOrderStatusFunc(paymentID, newStatus, activatedAt)
	}
	return nil
}

func (m *mockOrderRepo) MarkExpired(paymentID string) (bool, error) {
	if m.MarkExpiredFunc != nil {
		return m.MarkExpiredFunc(paymentID)
	}
	return true, nil
}

func (m *mockOrderRepo) GetOrders(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error) {
	if m.GetOrdersFunc != nil {
		return m.GetOrdersFunc(filters, page, limit)
	}
	return nil, 0, nil
}

func (m *mockOrderRepo) FindExpiredOrders() ([]*domain.Order, error) {
	if m.FindExpiredOrdersFunc != nil {
		return m.FindExpiredOrdersFunc()
	}
	return nil, nil
}

type mockGateway struct {
	CreatePaymentFunc func(ctx context.Context, req domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error)
}

func (m *mockGateway) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error) {
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, req)
	}
	return &domain.CreatePaymentResult{
		PaymentID:   "5077125051",
		PayAddress:  "3EZ2uTdVDAMFXTfc6uLDDKR6o8qKBZXVkj",
		PayAmount:   0.0012,
		PayCurrency: "btc",
		Status:      domain.StatusWaiting,
	}, nil
}

type mockPublisher struct {
	PublishFunc func(topic string, msgs ...domain.Message) error
}

func (m *mockPublisher) Publish(topic string, msgs ...domain.Message) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(topic, msgs...)
	}
	return nil
}

type mockMailer struct {
	SendActivationFunc func(email, planName string) error
}

func (m *mockMailer) SendActivation(email, planName string) error {
	if m.SendActivationFunc != nil {
		return m.SendActivationFunc(email, planName)
	}
	return nil
}

func testSettings() Settings {
	return Settings{
		SettlementCurrency: "usd",
		DefaultPayCurrency: "btc",
		OrderTTL:           time.Hour,
		PriceCeiling:       1000,
		ActivationTopic:    "payment-activations",
		FailureTopic:       "payment-failures",
	}
}

func newTestUsecase(repo *mockOrderRepo, gateway *mockGateway) *DefaultPaymentUsecase {
	return NewDefaultPaymentUsecase(repo, gateway, nil, nil, nil, testSettings())
}
