package usecase

import (
	"github.com/streamvault/payment-service/internal/domain"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

func (uc *DefaultPaymentUsecase) GetOrderStatus(paymentID string) (*orderdto.OrderStatusOutput, error) {
	if paymentID == "" {
		return nil, domain.ErrInvalidPaymentID
	}

	order, err := uc.OrderRepo.GetOrderByPaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	return orderdto.ToOrderStatusOutput(order), nil
}

func (uc *DefaultPaymentUsecase) GetOrders(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	return uc.OrderRepo.GetOrders(filters, page, limit)
}
