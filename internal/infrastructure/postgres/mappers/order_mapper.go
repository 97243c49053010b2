package mappers

import (
	"github.com/streamvault/payment-service/internal/domain"
	"github.com/streamvault/payment-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:     model.ID,
		Status: model.PaymentStatus,
		PlanInfo: domain.PlanInfo{
			PlanID:        model.PlanID,
			PlanName:      model.PlanName,
			PriceAmount:   model.PriceAmount,
			PriceCurrency: model.PriceCurrency,
		},
		CustomerInfo: domain.CustomerInfo{
			Email:      model.Email,
			Device:     model.Device,
			DeviceInfo: model.DeviceInfo,
		},
		PaymentInfo: domain.PaymentInfo{
			PaymentID:   model.PaymentID,
			PayAddress:  model.PayAddress,
			PayAmount:   model.PayAmount,
			PayCurrency: model.PayCurrency,
			PaymentURL:  model.PaymentURL,
		},
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		ActivatedAt: model.ActivatedAt,
		ExpiresAt:   model.ExpiresAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:            order.ID,
		Email:         order.CustomerInfo.Email,
		Device:        order.CustomerInfo.Device,
		DeviceInfo:    order.CustomerInfo.DeviceInfo,
		PlanID:        order.PlanInfo.PlanID,
		PlanName:      order.PlanInfo.PlanName,
		PriceAmount:   order.PlanInfo.PriceAmount,
		PriceCurrency: order.PlanInfo.PriceCurrency,
		PaymentID:     order.PaymentInfo.PaymentID,
		PaymentStatus: order.Status,
		PayAddress:    order.PaymentInfo.PayAddress,
		PayAmount:     order.PaymentInfo.PayAmount,
		PayCurrency:   order.PaymentInfo.PayCurrency,
		PaymentURL:    order.PaymentInfo.PaymentURL,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		ActivatedAt:   order.ActivatedAt,
		ExpiresAt:     order.ExpiresAt,
	}
}
