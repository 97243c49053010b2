package nowpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/streamvault/payment-service/internal/domain"
)

// Client wraps the NOWPayments REST API. Only payment creation is used:
// status changes come back through the IPN webhook.
type Client struct {
	BaseURL     string
	APIKey      string
	CallbackURL string
	httpClient  *http.Client
}

func NewClient(baseURL, apiKey, callbackURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		CallbackURL: callbackURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type createPaymentRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	PayCurrency      string  `json:"pay_currency"`
	IPNCallbackURL   string  `json:"ipn_callback_url"`
	OrderID          string  `json:"order_id"`
	OrderDescription string  `json:"order_description"`
}

type createPaymentResponse struct {
	PaymentID     json.Number `json:"payment_id"`
	PaymentStatus string      `json:"payment_status"`
	PayAddress    string      `json:"pay_address"`
	PayAmount     float64     `json:"pay_amount"`
	PayCurrency   string      `json:"pay_currency"`
	InvoiceURL    string      `json:"invoice_url"`
}

func (c *Client) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error) {
	requestBodyBytes, err := json.Marshal(createPaymentRequest{
		PriceAmount:      req.PriceAmount,
		PriceCurrency:    req.PriceCurrency,
		PayCurrency:      req.PayCurrency,
		IPNCallbackURL:   c.CallbackURL,
		OrderID:          req.OrderReference,
		OrderDescription: req.OrderDescription,
	})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/payment", c.BaseURL), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	request.Header.Set("x-api-key", c.APIKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		slog.Error("nowpayments request failed", "error", err.Error())
		return nil, domain.ErrGatewayUnavailable
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, domain.ErrGatewayUnavailable
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		slog.Error("nowpayments API error",
			"status_code", response.StatusCode,
			"body", string(responseBodyBytes),
		)
		return nil, domain.ErrGatewayUnavailable
	}

	var paymentResponse createPaymentResponse
	if err := json.Unmarshal(responseBodyBytes, &paymentResponse); err != nil {
		slog.Error("nowpayments response parse failed", "error", err.Error())
		return nil, domain.ErrMalformedGatewayResponse
	}

	// Fail loudly on a response missing contractual fields rather than
	// persisting a broken order.
	if paymentResponse.PaymentID.String() == "" || paymentResponse.PayAddress == "" ||
		paymentResponse.PayAmount == 0 || paymentResponse.PayCurrency == "" {
		slog.Error("nowpayments returned malformed payment",
			"payment_id", paymentResponse.PaymentID.String(),
			"pay_address", paymentResponse.PayAddress,
		)
		return nil, domain.ErrMalformedGatewayResponse
	}

	status := domain.PaymentStatus(paymentResponse.PaymentStatus)
	if !status.Valid() {
		status = domain.StatusWaiting
	}

	return &domain.CreatePaymentResult{
		PaymentID:   paymentResponse.PaymentID.String(),
		PayAddress:  paymentResponse.PayAddress,
		PayAmount:   paymentResponse.PayAmount,
		PayCurrency: paymentResponse.PayCurrency,
		Status:      status,
		PaymentURL:  paymentResponse.InvoiceURL,
	}, nil
}
