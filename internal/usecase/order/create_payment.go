package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/streamvault/payment-service/internal/domain"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

func (uc *DefaultPaymentUsecase) CreatePayment(ctx context.Context, input *orderdto.CreatePaymentInput) (*orderdto.PaymentOutput, error) {
	if err := uc.validateCreatePayment(input); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordCreationError("validation")
		}
		return nil, err
	}

	email := trimAndCap(input.Email, maxEmailLength)
	planName := sanitizeString(input.PlanName, maxPlanNameLength)
	device := sanitizeString(input.Device, maxDeviceLength)
	deviceInfo := sanitizeString(input.DeviceInfo, maxDeviceInfoLength)

	payCurrency := input.PayCurrency
	if payCurrency == "" {
		payCurrency = uc.Settings.DefaultPayCurrency
	}

	slog.Info("creating payment",
		"plan_id", input.PlanID,
		"price", input.Price,
		"pay_currency", payCurrency,
	)

	start := time.Now()
	payment, err := uc.Gateway.CreatePayment(ctx, domain.CreatePaymentRequest{
		PriceAmount:      input.Price,
		PriceCurrency:    uc.Settings.SettlementCurrency,
		PayCurrency:      payCurrency,
		OrderReference:   uuid.New().String(),
		OrderDescription: fmt.Sprintf("StreamVault - %s", planName),
	})
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordGatewayCall("error", time.Since(start).Seconds())
			uc.Metrics.RecordCreationError("gateway")
		}
		if !errors.Is(err, domain.ErrPaymentCreation) {
			return nil, domain.ErrPaymentCreation
		}
		return nil, err
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordGatewayCall("success", time.Since(start).Seconds())
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &domain.Order{
		ID: idGenerator(),
		PlanInfo: domain.PlanInfo{
			PlanID:        input.PlanID,
			PlanName:      planName,
			PriceAmount:   input.Price,
			PriceCurrency: uc.Settings.SettlementCurrency,
		},
		CustomerInfo: domain.CustomerInfo{
			Email:      email,
			Device:     device,
			DeviceInfo: deviceInfo,
		},
		PaymentInfo: domain.PaymentInfo{
			PaymentID:   payment.PaymentID,
			PayAddress:  payment.PayAddress,
			PayAmount:   payment.PayAmount,
			PayCurrency: payment.PayCurrency,
			PaymentURL:  payment.PaymentURL,
		},
		Status:    payment.Status,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(uc.Settings.OrderTTL),
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		// The remote payment exists but we hold no record of it. This
		// needs manual reconciliation against the gateway dashboard.
		slog.Error("OPERATIONAL ALERT: order not saved after successful gateway call",
			"payment_id", payment.PaymentID,
			"pay_address", payment.PayAddress,
			"plan_id", input.PlanID,
			"error", err.Error(),
		)
		if uc.Metrics != nil {
			uc.Metrics.RecordCreationError("persistence")
		}
		return nil, domain.ErrOrderNotSaved
	}

	slog.Info("order saved",
		"order_id", order.ID,
		"payment_id", order.PaymentInfo.PaymentID,
		"status", string(order.Status),
	)
	if uc.Metrics != nil {
		uc.Metrics.RecordPaymentCreated(input.PlanID, payment.PayCurrency, input.Price)
	}

	return &orderdto.PaymentOutput{
		OrderID:     order.ID,
		PaymentID:   order.PaymentInfo.PaymentID,
		PayAddress:  order.PaymentInfo.PayAddress,
		PayAmount:   order.PaymentInfo.PayAmount,
		PayCurrency: order.PaymentInfo.PayCurrency,
		PaymentURL:  order.PaymentInfo.PaymentURL,
	}, nil
}
