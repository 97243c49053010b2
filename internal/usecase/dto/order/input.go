package orderdto

type CreatePaymentInput struct {
	PlanID     string
	PlanName   string
	Price      float64
	Email      string
	Device     string
	DeviceInfo string
	// PayCurrency selects the crypto denomination; empty means the
	// configured default.
	PayCurrency string
}

type WebhookInput struct {
	PaymentID     string
	PaymentStatus string
	Signed        bool
}
