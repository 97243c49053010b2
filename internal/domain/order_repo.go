package domain

import "time"

type OrderFilters struct {
	Statuses []PaymentStatus
	Email    string
	PlanID   string
	DateFrom time.Time
	DateTo   time.Time
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByPaymentID(paymentID string) (*Order, error)
	// UpdateOrderStatus refuses to touch rows already in a terminal
	// status; an absorbed update is a no-op, not an error.
	UpdateOrderStatus(paymentID string, newStatus PaymentStatus, activatedAt *time.Time) error
	// ForceOrderStatus is the unguarded variant for operator overrides.
	ForceOrderStatus(paymentID string, newStatus PaymentStatus, activatedAt *time.Time) error
	MarkExpired(paymentID string) (bool, error)
	GetOrders(filters OrderFilters, page, limit int) ([]*Order, int64, error)
	FindExpiredOrders() ([]*Order, error)
}
