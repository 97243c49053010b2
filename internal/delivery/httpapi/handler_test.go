package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/streamvault/payment-service/internal/delivery/httpapi/middleware"
	"github.com/streamvault/payment-service/internal/domain"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockService struct {
	CreatePaymentFunc       func(ctx context.Context, input *orderdto.CreatePaymentInput) (*orderdto.PaymentOutput, error)
	ProcessWebhookFunc      func(ctx context.Context, input *orderdto.WebhookInput) error
	GetOrderStatusFunc      func(paymentID string) (*orderdto.OrderStatusOutput, error)
	GetOrdersFunc           func(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error)
	OverrideOrderStatusFunc func(paymentID string, newStatus domain.PaymentStatus) error
}

func (m *mockService) CreatePayment(ctx context.Context, input *orderdto.CreatePaymentInput) (*orderdto.PaymentOutput, error) {
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, input)
	}
	return &orderdto.PaymentOutput{
		OrderID:     "ord_1",
		PaymentID:   "5077125051",
		PayAddress:  "3EZ2uTdVDAMFXTfc6uLDDKR6o8qKBZXVkj",
		PayAmount:   0.0012,
		PayCurrency: "btc",
	}, nil
}

func (m *mockService) ProcessWebhook(ctx context.Context, input *orderdto.WebhookInput) error {
	if m.ProcessWebhookFunc != nil {
		return m.ProcessWebhookFunc(ctx, input)
	}
	return nil
}

func (m *mockService) GetOrderStatus(paymentID string) (*orderdto.OrderStatusOutput, error) {
	if m.GetOrderStatusFunc != nil {
		return m.GetOrderStatusFunc(paymentID)
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockService) GetOrders(filters domain.OrderFilters, page, limit int) ([]*domain.Order, int64, error) {
	if m.GetOrdersFunc != nil {
		return m.GetOrdersFunc(filters, page, limit)
	}
	return nil, 0, nil
}

func (m *mockService) OverrideOrderStatus(paymentID string, newStatus domain.PaymentStatus) error {
	if m.OverrideOrderStatusFunc != nil {
		return m.OverrideOrderStatusFunc(paymentID, newStatus)
	}
	return nil
}

func newTestRouter(service PaymentService, secret string, requireSignature bool, adminToken string) *gin.Engine {
	handler := NewPaymentHandler(service, secret, requireSignature)
	limiter := middleware.NewRateLimiter(1000, 1000)
	return NewRouter(handler, limiter, adminToken)
}

func TestCreatePayment_ReturnsPaymentFields(t *testing.T) {
	router := newTestRouter(&mockService{}, "secret", false, "")

	body := `{"planId":"6months","planName":"6 Months Premium","price":45,"email":"a@b.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Payment struct {
			PaymentID   string  `json:"payment_id"`
			PayAddress  string  `json:"pay_address"`
			PayAmount   float64 `json:"pay_amount"`
			PayCurrency string  `json:"pay_currency"`
			OrderID     string  `json:"order_id"`
		} `json:"payment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Payment.PaymentID != "5077125051" || resp.Payment.PayCurrency != "btc" {
		t.Errorf("unexpected payment payload: %+v", resp.Payment)
	}
	if resp.Payment.OrderID != "ord_1" {
		t.Errorf("unexpected order_id %q", resp.Payment.OrderID)
	}
}

func TestCreatePayment_ValidationErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantCode    int
		wantMessage string
	}{
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest, "Invalid email address"},
		{"invalid plan", domain.ErrInvalidPlanID, http.StatusBadRequest, "Invalid plan ID"},
		{"invalid price", domain.ErrInvalidPrice, http.StatusBadRequest, "Invalid price"},
		{"invalid plan name", domain.ErrInvalidPlanName, http.StatusBadRequest, "Invalid plan name"},
		{"order not saved", domain.ErrOrderNotSaved, http.StatusServiceUnavailable, "Payment creation failed. Please try again."},
		{"gateway failure", domain.ErrPaymentCreation, http.StatusInternalServerError, "Payment creation failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockService{
				CreatePaymentFunc: func(ctx context.Context, input *orderdto.CreatePaymentInput) (*orderdto.PaymentOutput, error) {
					return nil, tt.serviceErr
				},
			}
			router := newTestRouter(service, "secret", false, "")

			body := `{"planId":"6months","planName":"x","price":45,"email":"a@b.com"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			var resp struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Error != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, resp.Error)
			}
		})
	}
}

func TestCreatePayment_MalformedBody(t *testing.T) {
	router := newTestRouter(&mockService{}, "secret", false, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetOrderStatus_Found(t *testing.T) {
	expires := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	service := &mockService{
		GetOrderStatusFunc: func(paymentID string) (*orderdto.OrderStatusOutput, error) {
			if paymentID != "5077125051" {
				t.Errorf("unexpected payment id %q", paymentID)
			}
			return &orderdto.OrderStatusOutput{
				PaymentID:     "5077125051",
				PaymentStatus: domain.StatusConfirming,
				PayAddress:    "addr",
				PayAmount:     0.0012,
				PayCurrency:   "btc",
				ExpiresAt:     expires,
				Email:         "a@b.com",
				PlanName:      "6 Months Premium",
			}, nil
		},
	}
	router := newTestRouter(service, "secret", false, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/5077125051", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		PaymentID     string    `json:"payment_id"`
		PaymentStatus string    `json:"payment_status"`
		PayAmount     float64   `json:"pay_amount"`
		ExpiresAt     time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.PaymentStatus != "confirming" {
		t.Errorf("expected confirming, got %q", resp.PaymentStatus)
	}
	if !resp.ExpiresAt.Equal(expires) {
		t.Errorf("expires_at round-trip mismatch: %v vs %v", resp.ExpiresAt, expires)
	}
}

func TestGetOrderStatus_NotFound(t *testing.T) {
	router := newTestRouter(&mockService{}, "secret", false, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&mockService{}, "secret", false, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
