package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_CreateCharge_Success(t *testing.T) {
	var got chargeBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pix/cashIn", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"9e2b0c1a","qr_code":"00020101","qr_code_base64":"aGVsbG8=","status":"created","value":5000}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(config.GatewayConfig{BaseURL: srv.URL + "/", Token: "secret-token", Timeout: time.Second})

	charge, err := client.CreateCharge(context.Background(), ChargeRequest{
		Amount:     decimal.RequireFromString("50.00"),
		WebhookURL: "https://ledger.example.com/webhooks/pix",
	})

	require.NoError(t, err)
	assert.Equal(t, "9e2b0c1a", charge.ID)
	assert.Equal(t, "00020101", charge.QRCode)
	assert.Equal(t, int64(5000), got.Value)
	assert.Equal(t, "https://ledger.example.com/webhooks/pix", got.WebhookURL)
	assert.NotNil(t, got.SplitRules)
	assert.Empty(t, got.SplitRules)
}

func TestHTTPClient_CreateCharge_Non2xxIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"value too low"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(config.GatewayConfig{BaseURL: srv.URL, Timeout: time.Second})

	charge, err := client.CreateCharge(context.Background(), ChargeRequest{Amount: decimal.RequireFromString("0.50")})

	require.Error(t, err)
	assert.Nil(t, charge)
	assert.ErrorIs(t, err, model.ErrGateway)
	assert.Contains(t, err.Error(), "status 422")
}

func TestHTTPClient_CreateCharge_RejectsSubCentavo(t *testing.T) {
	client := NewHTTPClient(config.GatewayConfig{BaseURL: "http://127.0.0.1:0", Timeout: time.Second})

	_, err := client.CreateCharge(context.Background(), ChargeRequest{Amount: decimal.RequireFromString("10.005")})

	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestCentavosConversion(t *testing.T) {
	cents, err := ToCentavos(decimal.RequireFromString("12.34"))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cents)

	assert.Equal(t, "12.34", FromCentavos(1234).StringFixed(2))
}
