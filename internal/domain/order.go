package domain

import "time"

type PaymentStatus string

const (
	StatusWaiting       PaymentStatus = "waiting"
	StatusConfirming    PaymentStatus = "confirming"
	StatusConfirmed     PaymentStatus = "confirmed"
	StatusSending       PaymentStatus = "sending"
	StatusPartiallyPaid PaymentStatus = "partially_paid"
	StatusFinished      PaymentStatus = "finished"
	StatusFailed        PaymentStatus = "failed"
	StatusRefunded      PaymentStatus = "refunded"
	StatusExpired       PaymentStatus = "expired"
)

// KnownStatuses is the full set of statuses the gateway may report.
var KnownStatuses = []PaymentStatus{
	StatusWaiting,
	StatusConfirming,
	StatusConfirmed,
	StatusSending,
	StatusPartiallyPaid,
	StatusFinished,
	StatusFailed,
	StatusRefunded,
	StatusExpired,
}

func (s PaymentStatus) Valid() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// TerminalStatuses are absorbing: once reached, no further transition is
// accepted from the gateway.
var TerminalStatuses = []PaymentStatus{
	StatusFinished,
	StatusFailed,
	StatusRefunded,
	StatusExpired,
}

// IsTerminal reports whether no further transition is expected from s.
func (s PaymentStatus) IsTerminal() bool {
	for _, terminal := range TerminalStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}

type Order struct {
	ID           string
	PlanInfo     PlanInfo
	CustomerInfo CustomerInfo
	PaymentInfo  PaymentInfo
	Status       PaymentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ActivatedAt  *time.Time
	ExpiresAt    time.Time
}

type PlanInfo struct {
	PlanID        string
	PlanName      string
	PriceAmount   float64
	PriceCurrency string
}

type CustomerInfo struct {
	Email      string
	Device     string
	DeviceInfo string
}

type PaymentInfo struct {
	PaymentID   string
	PayAddress  string
	PayAmount   float64
	PayCurrency string
	PaymentURL  string
}
