package publisher

import "time"

// PaymentEvent is published on the activation topic when a payment reaches
// finished, and on the failure topic for failed/expired payments. The
// consumer on the activation topic delivers credentials to the customer.
type PaymentEvent struct {
	OrderID     string    `json:"order_id"`
	PaymentID   string    `json:"payment_id"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	PlanID      string    `json:"plan_id"`
	PlanName    string    `json:"plan_name"`
	PriceAmount float64   `json:"price_amount"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}
