package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	paymentRequest "github.com/streamvault/payment-service/internal/delivery/httpapi/dto/payment/request"
	paymentResponse "github.com/streamvault/payment-service/internal/delivery/httpapi/dto/payment/response"
	"github.com/streamvault/payment-service/internal/domain"
)

// ListOrders serves the audit/reporting view. Orders are never deleted, so
// this is the operator's window into the full history.
func (h *PaymentHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filters := domain.OrderFilters{
		Email:  c.Query("email"),
		PlanID: c.Query("plan_id"),
	}
	if status := c.Query("status"); status != "" {
		filters.Statuses = []domain.PaymentStatus{domain.PaymentStatus(status)}
	}

	orders, total, err := h.Service.GetOrders(filters, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "Failed to fetch orders"})
		return
	}

	items := make([]paymentResponse.OrderStatusResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, paymentResponse.OrderStatusResponse{
			PaymentID:     order.PaymentInfo.PaymentID,
			PaymentStatus: string(order.Status),
			PayAddress:    order.PaymentInfo.PayAddress,
			PayAmount:     order.PaymentInfo.PayAmount,
			PayCurrency:   order.PaymentInfo.PayCurrency,
			PaymentURL:    order.PaymentInfo.PaymentURL,
			ExpiresAt:     order.ExpiresAt,
			Email:         order.CustomerInfo.Email,
			PlanName:      order.PlanInfo.PlanName,
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": items, "total": total, "page": page, "limit": limit})
}

// OverrideStatus lets an operator force a status during manual
// reconciliation, e.g. after a missed webhook.
func (h *PaymentHandler) OverrideStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var req paymentRequest.OverrideStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Invalid request"})
		return
	}

	err := h.Service.OverrideOrderStatus(paymentID, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Invalid payment_status"})
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, paymentResponse.ErrorResponse{Error: "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "Failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
