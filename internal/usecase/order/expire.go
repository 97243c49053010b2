package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/streamvault/payment-service/internal/domain"
)

// ExpireOverdueOrders sweeps waiting orders whose payment window elapsed
// without a gateway notification. MarkExpired only touches rows still in
// waiting, so a webhook racing the sweep always wins.
func (uc *DefaultPaymentUsecase) ExpireOverdueOrders(ctx context.Context) (int, error) {
	orders, err := uc.OrderRepo.FindExpiredOrders()
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return expired, ctx.Err()
		default:
		}

		marked, err := uc.OrderRepo.MarkExpired(order.PaymentInfo.PaymentID)
		if err != nil {
			slog.Error("failed to expire order",
				"payment_id", order.PaymentInfo.PaymentID,
				"error", err.Error(),
			)
			continue
		}
		if !marked {
			continue
		}

		expired++
		slog.Info("order expired",
			"order_id", order.ID,
			"payment_id", order.PaymentInfo.PaymentID,
		)
		uc.publishEvent(uc.Settings.FailureTopic, order, domain.StatusExpired)
	}

	if expired > 0 && uc.Metrics != nil {
		uc.Metrics.RecordExpired(expired)
	}

	return expired, nil
}

// OverrideOrderStatus is the operator escape hatch for manual
// reconciliation. It bypasses the absorbing-terminal rule on purpose.
func (uc *DefaultPaymentUsecase) OverrideOrderStatus(paymentID string, newStatus domain.PaymentStatus) error {
	if !newStatus.Valid() {
		return domain.ErrInvalidStatus
	}

	order, err := uc.OrderRepo.GetOrderByPaymentID(paymentID)
	if err != nil {
		return err
	}

	var activatedAt *time.Time
	if newStatus == domain.StatusFinished {
		now := time.Now()
		activatedAt = &now
	}

	if err := uc.OrderRepo.ForceOrderStatus(paymentID, newStatus, activatedAt); err != nil {
		return err
	}

	slog.Warn("operator status override",
		"order_id", order.ID,
		"payment_id", paymentID,
		"old_status", string(order.Status),
		"new_status", string(newStatus),
	)

	return nil
}
