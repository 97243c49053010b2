package paymentpoll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Order is the public order view served by the status endpoint.
type Order struct {
	PaymentID     string    `json:"payment_id"`
	PaymentStatus string    `json:"payment_status"`
	PayAddress    string    `json:"pay_address"`
	PayAmount     float64   `json:"pay_amount"`
	PayCurrency   string    `json:"pay_currency"`
	PaymentURL    string    `json:"payment_url"`
	ExpiresAt     time.Time `json:"expires_at"`
	Email         string    `json:"email"`
	PlanName      string    `json:"plan_name"`
}

func (o *Order) Terminal() bool {
	switch o.PaymentStatus {
	case "finished", "failed", "refunded", "expired":
		return true
	}
	return false
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetOrder(ctx context.Context, paymentID string) (*Order, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/v1/payments/%s", c.BaseURL, paymentID), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("status request returned %d", response.StatusCode)
	}

	var order Order
	if err := json.Unmarshal(responseBodyBytes, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
