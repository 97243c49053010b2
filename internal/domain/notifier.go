package domain

// CredentialSender delivers access credentials to the customer after a
// payment reaches finished. Delivery is best-effort and never blocks or
// rolls back the status update.
type CredentialSender interface {
	SendActivation(email, planName string) error
}
