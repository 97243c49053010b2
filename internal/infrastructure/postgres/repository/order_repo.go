package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/streamvault/payment-service/internal/domain"
	"github.com/streamvault/payment-service/internal/infrastructure/postgres/mappers"
	"github.com/streamvault/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByPaymentID(paymentID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// UpdateOrderStatus is a single UPDATE keyed by the unique payment id, so
// concurrent webhook deliveries for the same order serialize on the row.
// The terminal guard sits in the WHERE clause: even when two deliveries
// race past the usecase's read, a just-finished order cannot regress.
func (r *DefaultOrderRepository) UpdateOrderStatus(paymentID string, newStatus domain.PaymentStatus, activatedAt *time.Time) error {
	updates := map[string]interface{}{
		"payment_status": newStatus,
		"updated_at":     time.Now(),
	}
	if activatedAt != nil {
		updates["activated_at"] = *activatedAt
	}

	result := r.DB.Model(&models.OrderModel{}).
		Where("payment_id = ?", paymentID).
		Where("payment_status NOT IN (?)", domain.TerminalStatuses).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.OrderModel{}).
			Where("payment_id = ?", paymentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrOrderNotFound
		}
		// Row exists but is terminal: the update was absorbed.
		return nil
	}

	return nil
}

// ForceOrderStatus bypasses the terminal guard for operator overrides.
func (r *DefaultOrderRepository) ForceOrderStatus(paymentID string, newStatus domain.PaymentStatus, activatedAt *time.Time) error {
	updates := map[string]interface{}{
		"payment_status": newStatus,
		"updated_at":     time.Now(),
	}
	if activatedAt != nil {
		updates["activated_at"] = *activatedAt
	}

	result := r.DB.Model(&models.OrderModel{}).
		Where("payment_id = ?", paymentID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// MarkExpired transitions an order to expired only while it is still
// waiting, so a concurrently delivered webhook always wins the row.
func (r *DefaultOrderRepository) MarkExpired(paymentID string) (bool, error) {
	result := r.DB.Model(&models.OrderModel{}).
		Where("payment_id = ? AND payment_status = ?", paymentID, domain.StatusWaiting).
		Updates(map[string]interface{}{
			"payment_status": domain.StatusExpired,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *DefaultOrderRepository) GetOrders(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.Model(&models.OrderModel{})

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("payment_status IN (?)", filters.Statuses)
	}

	if filters.Email != "" {
		baseQuery = baseQuery.Where("email = ?", filters.Email)
	}

	if filters.PlanID != "" {
		baseQuery = baseQuery.Where("plan_id = ?", filters.PlanID)
	}

	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}

	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) FindExpiredOrders() ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("payment_status = ?", domain.StatusWaiting).
		Where("expires_at < ?", time.Now()).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}
