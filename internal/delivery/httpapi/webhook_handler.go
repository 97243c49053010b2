package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	paymentResponse "github.com/streamvault/payment-service/internal/delivery/httpapi/dto/payment/response"
	"github.com/streamvault/payment-service/internal/domain"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

type webhookBody struct {
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
}

// HandleWebhook authenticates and applies one gateway IPN delivery. The
// signature covers the exact raw body, so the body is read before any JSON
// decoding touches it.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Failed to read body"})
		return
	}

	signature := c.GetHeader(SignatureHeader)
	signed := signature != ""

	if signed {
		if !VerifySignature(body, signature, h.IPNSecret) {
			slog.Error("invalid webhook signature, possible spoofing attempt",
				"remote_addr", c.ClientIP(),
			)
			if h.Metrics != nil {
				h.Metrics.RecordSignatureReject()
			}
			c.JSON(http.StatusUnauthorized, paymentResponse.ErrorResponse{Error: "Invalid signature"})
			return
		}
	} else {
		if h.RequireSignature {
			slog.Error("unsigned webhook rejected", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, paymentResponse.ErrorResponse{Error: "Missing signature"})
			return
		}
		slog.Warn("webhook has no signature, processing as low-trust", "remote_addr", c.ClientIP())
	}

	var webhook webhookBody
	if err := json.Unmarshal(body, &webhook); err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Malformed webhook body"})
		return
	}

	err = h.Service.ProcessWebhook(c.Request.Context(), &orderdto.WebhookInput{
		PaymentID:     webhook.PaymentID,
		PaymentStatus: webhook.PaymentStatus,
		Signed:        signed,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPaymentID):
			c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Invalid payment_id"})
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "Invalid payment_status"})
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, paymentResponse.ErrorResponse{Error: "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "Webhook processing failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
