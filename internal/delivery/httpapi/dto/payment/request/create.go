package paymentRequest

type CreatePaymentRequest struct {
	PlanID      string  `json:"planId"`
	PlanName    string  `json:"planName"`
	Price       float64 `json:"price"`
	Email       string  `json:"email"`
	Device      string  `json:"device"`
	DeviceInfo  string  `json:"deviceInfo"`
	PayCurrency string  `json:"payCurrency"`
}

type OverrideStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}
