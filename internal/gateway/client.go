package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/model"
	"strings"

	"github.com/shopspring/decimal"
)

// ChargeRequest asks the provider for a PIX charge. Amount is in BRL.
type ChargeRequest struct {
	Amount     decimal.Decimal
	WebhookURL string
}

// Charge is the provider's answer to a charge request.
type Charge struct {
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	Status       string `json:"status"`
	Value        int64  `json:"value"`
}

// Client creates PIX charges with the payment provider.
type Client interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

type chargeBody struct {
	Value      int64    `json:"value"`
	WebhookURL string   `json:"webhook_url,omitempty"`
	SplitRules []string `json:"split_rules"`
}

// HTTPClient talks to the provider's REST API. No retries: a failed charge is
// surfaced to the user, who may try again.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPClient(cfg config.GatewayConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// CreateCharge posts a cash-in request and returns the QR code data
func (c *HTTPClient) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	cents, err := ToCentavos(req.Amount)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(chargeBody{
		Value:      cents,
		WebhookURL: req.WebhookURL,
		SplitRules: []string{},
	})
	if err != nil {
		return nil, fmt.Errorf("encode charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pix/cashIn", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", model.ErrGateway, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", model.ErrGateway, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned status %d: %s", model.ErrGateway, resp.StatusCode, truncate(string(body), 200))
	}

	var charge Charge
	if err := json.Unmarshal(body, &charge); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", model.ErrGateway, err)
	}
	if charge.ID == "" {
		return nil, fmt.Errorf("%w: response without charge id", model.ErrGateway)
	}

	return &charge, nil
}

// ToCentavos converts a BRL amount to integer minor units, rejecting sub-centavo precision.
func ToCentavos(amount decimal.Decimal) (int64, error) {
	cents := amount.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s has more than two decimal places", model.ErrInvalidAmount, amount.String())
	}
	return cents.IntPart(), nil
}

// FromCentavos converts integer minor units to a BRL amount.
func FromCentavos(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
