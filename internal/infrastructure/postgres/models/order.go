package models

import (
	"time"

	"github.com/streamvault/payment-service/internal/domain"
)

type OrderModel struct {
	ID            string               `gorm:"primaryKey"`
	Email         string               `gorm:"index:idx_email"`
	Device        string
	DeviceInfo    string
	PlanID        string
	PlanName      string
	PriceAmount   float64
	PriceCurrency string
	PaymentID     string               `gorm:"uniqueIndex:idx_payment_id"`
	PaymentStatus domain.PaymentStatus `gorm:"index:idx_status_expires"`
	PayAddress    string
	PayAmount     float64
	PayCurrency   string
	PaymentURL    string
	CreatedAt     time.Time `gorm:"index:idx_created_at"`
	UpdatedAt     time.Time
	ActivatedAt   *time.Time
	ExpiresAt     time.Time `gorm:"index:idx_status_expires"`
}

func (OrderModel) TableName() string {
	return "orders"
}
