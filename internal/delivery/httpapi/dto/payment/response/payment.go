package paymentResponse

import "time"

type CreatePaymentResponse struct {
	Success bool        `json:"success"`
	Payment PaymentInfo `json:"payment"`
}

type PaymentInfo struct {
	PaymentID   string  `json:"payment_id"`
	PayAddress  string  `json:"pay_address"`
	PayAmount   float64 `json:"pay_amount"`
	PayCurrency string  `json:"pay_currency"`
	PaymentURL  string  `json:"payment_url,omitempty"`
	OrderID     string  `json:"order_id"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// OrderStatusResponse exposes exactly the order fields the front end needs
// to drive the payment page and its countdown.
type OrderStatusResponse struct {
	PaymentID     string    `json:"payment_id"`
	PaymentStatus string    `json:"payment_status"`
	PayAddress    string    `json:"pay_address"`
	PayAmount     float64   `json:"pay_amount"`
	PayCurrency   string    `json:"pay_currency"`
	PaymentURL    string    `json:"payment_url,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
	Email         string    `json:"email"`
	PlanName      string    `json:"plan_name"`
}
