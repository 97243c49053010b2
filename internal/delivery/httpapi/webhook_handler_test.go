package httpapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamvault/payment-service/internal/domain"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

const testIPNSecret = "ipn-test-secret"

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(router http.Handler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook_ValidSignature(t *testing.T) {
	var gotInput *orderdto.WebhookInput
	service := &mockService{
		ProcessWebhookFunc: func(ctx context.Context, input *orderdto.WebhookInput) error {
			gotInput = input
			return nil
		},
	}
	router := newTestRouter(service, testIPNSecret, false, "")

	body := []byte(`{"payment_id":"5077125051","payment_status":"finished"}`)
	w := postWebhook(router, body, signBody(body, testIPNSecret))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotInput == nil {
		t.Fatal("webhook never reached the service")
	}
	if gotInput.PaymentID != "5077125051" || gotInput.PaymentStatus != "finished" {
		t.Errorf("unexpected input: %+v", gotInput)
	}
	if !gotInput.Signed {
		t.Error("expected Signed=true for a verified delivery")
	}
}

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	processed := false
	service := &mockService{
		ProcessWebhookFunc: func(ctx context.Context, input *orderdto.WebhookInput) error {
			processed = true
			return nil
		},
	}
	router := newTestRouter(service, testIPNSecret, false, "")

	body := []byte(`{"payment_id":"5077125051","payment_status":"finished"}`)
	w := postWebhook(router, body, signBody(body, "wrong-secret"))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if processed {
		t.Error("spoofed webhook must not be processed")
	}
}

func TestHandleWebhook_SignatureCoversExactBody(t *testing.T) {
	processed := false
	service := &mockService{
		ProcessWebhookFunc: func(ctx context.Context, input *orderdto.WebhookInput) error {
			processed = true
			return nil
		},
	}
	router := newTestRouter(service, testIPNSecret, false, "")

	// signature computed over a different byte sequence of the same JSON
	signed := []byte(`{"payment_id": "5077125051", "payment_status": "finished"}`)
	sent := []byte(`{"payment_id":"5077125051","payment_status":"finished"}`)
	w := postWebhook(router, sent, signBody(signed, testIPNSecret))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if processed {
		t.Error("body-mismatch delivery must not be processed")
	}
}

func TestHandleWebhook_UnsignedProcessedAsLowTrust(t *testing.T) {
	var gotInput *orderdto.WebhookInput
	service := &mockService{
		ProcessWebhookFunc: func(ctx context.Context, input *orderdto.WebhookInput) error {
			gotInput = input
			return nil
		},
	}
	router := newTestRouter(service, testIPNSecret, false, "")

	body := []byte(`{"payment_id":"5077125051","payment_status":"confirming"}`)
	w := postWebhook(router, body, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotInput == nil {
		t.Fatal("unsigned webhook must still be processed by default")
	}
	if gotInput.Signed {
		t.Error("expected Signed=false for an unsigned delivery")
	}
}

func TestHandleWebhook_UnsignedRejectedWhenRequired(t *testing.T) {
	processed := false
	service := &mockService{
		ProcessWebhookFunc: func(ctx context.Context, input *orderdto.WebhookInput) error {
			processed = true
			return nil
		},
	}
	router := newTestRouter(service, testIPNSecret, true, "")

	body := []byte(`{"payment_id":"5077125051","payment_status":"confirming"}`)
	w := postWebhook(router, body, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if processed {
		t.Error("unsigned webhook must be rejected when signatures are required")
	}
}

func TestHandleWebhook_MalformedBody(t *testing.T) {
	router := newTestRouter(&mockService{}, testIPNSecret, false, "")

	body := []byte(`{"payment_id": 5077125051}`)
	w := postWebhook(router, body, signBody(body, testIPNSecret))

	// numeric payment_id fails the strict string decode
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{"unknown order", domain.ErrOrderNotFound, http.StatusNotFound},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid payment id", domain.ErrInvalidPaymentID, http.StatusBadRequest},
		{"storage failure", domain.ErrOrderNotSaved, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockService{
				ProcessWebhookFunc: func(ctx context.Context, input *orderdto.WebhookInput) error {
					return tt.serviceErr
				},
			}
			router := newTestRouter(service, testIPNSecret, false, "")

			body := []byte(`{"payment_id":"x","payment_status":"finished"}`)
			w := postWebhook(router, body, signBody(body, testIPNSecret))

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"payment_id":"1"}`)
	sig := signBody(body, testIPNSecret)

	if !VerifySignature(body, sig, testIPNSecret) {
		t.Error("expected valid signature to verify")
	}
	if VerifySignature(body, sig, "other") {
		t.Error("expected wrong secret to fail")
	}
	if VerifySignature([]byte(`{"payment_id":"2"}`), sig, testIPNSecret) {
		t.Error("expected altered body to fail")
	}
	if VerifySignature(body, "", testIPNSecret) {
		t.Error("expected empty signature to fail")
	}
}
