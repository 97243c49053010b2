package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	paymentRequest "github.com/streamvault/payment-service/internal/delivery/httpapi/dto/payment/request"
	paymentResponse "github.com/streamvault/payment-service/internal/delivery/httpapi/dto/payment/response"
	"github.com/streamvault/payment-service/internal/domain"
	"github.com/streamvault/payment-service/internal/infrastructure/metrics"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

// PaymentService is the slice of the payment usecase the handlers need.
type PaymentService interface {
	CreatePayment(ctx context.Context, input *orderdto.CreatePaymentInput) (*orderdto.PaymentOutput, error)
	ProcessWebhook(ctx context.Context, input *orderdto.WebhookInput) error
	GetOrderStatus(paymentID string) (*orderdto.OrderStatusOutput, error)
	GetOrders(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error)
	OverrideOrderStatus(paymentID string, newStatus domain.PaymentStatus) error
}

type PaymentHandler struct {
	Service          PaymentService
	IPNSecret        string
	RequireSignature bool
	Metrics          *metrics.PaymentMetrics
}

func NewPaymentHandler(service PaymentService, ipnSecret string, requireSignature bool) *PaymentHandler {
	return &PaymentHandler{
		Service:          service,
		IPNSecret:        ipnSecret,
		RequireSignature: requireSignature,
	}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req paymentRequest.CreatePaymentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Invalid request"})
		return
	}

	payment, err := h.Service.CreatePayment(c.Request.Context(), &orderdto.CreatePaymentInput{
		PlanID:      req.PlanID,
		PlanName:    req.PlanName,
		Price:       req.Price,
		Email:       req.Email,
		Device:      req.Device,
		DeviceInfo:  req.DeviceInfo,
		PayCurrency: req.PayCurrency,
	})
	if err != nil {
		status, message := mapCreateError(err)
		c.JSON(status, paymentResponse.ErrorResponse{Error: message})
		return
	}

	c.JSON(http.StatusOK, paymentResponse.CreatePaymentResponse{
		Success: true,
		Payment: paymentResponse.PaymentInfo{
			PaymentID:   payment.PaymentID,
			PayAddress:  payment.PayAddress,
			PayAmount:   payment.PayAmount,
			PayCurrency: payment.PayCurrency,
			PaymentURL:  payment.PaymentURL,
			OrderID:     payment.OrderID,
		},
	})
}

// mapCreateError keeps validation messages specific and everything
// upstream generic, so no gateway detail leaks to the client.
func mapCreateError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email address"
	case errors.Is(err, domain.ErrInvalidPlanID):
		return http.StatusBadRequest, "Invalid plan ID"
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, "Invalid price"
	case errors.Is(err, domain.ErrInvalidPlanName):
		return http.StatusBadRequest, "Invalid plan name"
	case errors.Is(err, domain.ErrOrderNotSaved):
		return http.StatusServiceUnavailable, "Payment creation failed. Please try again."
	default:
		return http.StatusInternalServerError, "Payment creation failed. Please try again."
	}
}

func (h *PaymentHandler) GetOrderStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")

	order, err := h.Service.GetOrderStatus(paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, domain.ErrInvalidPaymentID) {
			c.JSON(http.StatusNotFound, paymentResponse.ErrorResponse{Error: "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, paymentResponse.OrderStatusResponse{
		PaymentID:     order.PaymentID,
		PaymentStatus: string(order.PaymentStatus),
		PayAddress:    order.PayAddress,
		PayAmount:     order.PayAmount,
		PayCurrency:   order.PayCurrency,
		PaymentURL:    order.PaymentURL,
		ExpiresAt:     order.ExpiresAt,
		Email:         order.Email,
		PlanName:      order.PlanName,
	})
}
