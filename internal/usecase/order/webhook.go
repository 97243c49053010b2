package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/streamvault/payment-service/internal/domain"
	publisher "github.com/streamvault/payment-service/internal/infrastructure/kafka"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

// ProcessWebhook applies one gateway status notification. Transitions are
// idempotent and terminal states are absorbing, so redelivered and
// out-of-order webhooks never regress an order.
func (uc *DefaultPaymentUsecase) ProcessWebhook(ctx context.Context, input *orderdto.WebhookInput) error {
	if input.PaymentID == "" {
		return domain.ErrInvalidPaymentID
	}

	newStatus := domain.PaymentStatus(input.PaymentStatus)
	if !newStatus.Valid() {
		return domain.ErrInvalidStatus
	}

	order, err := uc.OrderRepo.GetOrderByPaymentID(input.PaymentID)
	if err != nil {
		// Webhooks never originate orders. Creation belongs to the
		// payment creation path only.
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhook("unknown_payment")
		}
		return err
	}

	if order.Status == newStatus {
		slog.Info("status unchanged, skipping update", "payment_id", input.PaymentID)
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhook("duplicate")
		}
		return nil
	}

	if order.Status.IsTerminal() {
		slog.Warn("ignoring status update for terminal order",
			"payment_id", input.PaymentID,
			"stored_status", string(order.Status),
			"incoming_status", string(newStatus),
		)
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhook("terminal_anomaly")
		}
		return nil
	}

	var activatedAt *time.Time
	if newStatus == domain.StatusFinished {
		now := time.Now()
		activatedAt = &now
	}

	if err := uc.OrderRepo.UpdateOrderStatus(input.PaymentID, newStatus, activatedAt); err != nil {
		slog.Error("failed to update order status",
			"payment_id", input.PaymentID,
			"old_status", string(order.Status),
			"new_status", string(newStatus),
			"error", err.Error(),
		)
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhook("update_failed")
		}
		return err
	}

	slog.Info("order status updated",
		"order_id", order.ID,
		"payment_id", input.PaymentID,
		"old_status", string(order.Status),
		"new_status", string(newStatus),
		"signed", input.Signed,
	)
	if uc.Metrics != nil {
		uc.Metrics.RecordWebhook("applied")
		uc.Metrics.RecordTransition(string(order.Status), string(newStatus))
	}

	switch newStatus {
	case domain.StatusFinished:
		uc.triggerActivation(order)
	case domain.StatusFailed, domain.StatusExpired:
		slog.Warn("payment failed or expired",
			"order_id", order.ID,
			"payment_id", input.PaymentID,
			"email", order.CustomerInfo.Email,
			"status", string(newStatus),
		)
		uc.publishEvent(uc.Settings.FailureTopic, order, newStatus)
	}

	return nil
}

// triggerActivation runs the downstream side effects of a finished payment.
// Both are best-effort: the status update is already committed and is never
// rolled back on delivery failure.
func (uc *DefaultPaymentUsecase) triggerActivation(order *domain.Order) {
	slog.Info("payment confirmed, activating subscription",
		"order_id", order.ID,
		"email", order.CustomerInfo.Email,
		"plan", order.PlanInfo.PlanName,
	)
	if uc.Metrics != nil {
		uc.Metrics.RecordFinished(order.PlanInfo.PlanID)
	}

	uc.publishEvent(uc.Settings.ActivationTopic, order, domain.StatusFinished)

	if uc.Mailer != nil {
		go func() {
			if err := uc.Mailer.SendActivation(order.CustomerInfo.Email, order.PlanInfo.PlanName); err != nil {
				slog.Error("activation email failed",
					"order_id", order.ID,
					"error", err.Error(),
				)
			}
		}()
	}
}

func (uc *DefaultPaymentUsecase) publishEvent(topic string, order *domain.Order, status domain.PaymentStatus) {
	if uc.Publisher == nil || topic == "" {
		return
	}

	event := publisher.PaymentEvent{
		OrderID:     order.ID,
		PaymentID:   order.PaymentInfo.PaymentID,
		Status:      string(status),
		Email:       order.CustomerInfo.Email,
		PlanID:      order.PlanInfo.PlanID,
		PlanName:    order.PlanInfo.PlanName,
		PriceAmount: order.PlanInfo.PriceAmount,
		Currency:    order.PlanInfo.PriceCurrency,
		OccurredAt:  time.Now(),
	}

	go func() {
		v, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal payment event", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(topic, domain.Message{Key: []byte(event.PaymentID), Value: v}); err != nil {
			slog.Error("failed to publish payment event",
				"topic", topic,
				"payment_id", event.PaymentID,
				"error", err.Error(),
			)
		}
	}()
}
