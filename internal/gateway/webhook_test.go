package gateway

import (
	"testing"

	"nextfund-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StatusMapping(t *testing.T) {
	tests := []struct {
		raw      string
		provider ProviderStatus
		status   model.TransactionStatus
		noop     bool
	}{
		{raw: "paid", provider: StatusPaid, status: model.StatusApproved},
		{raw: "PAID", provider: StatusPaid, status: model.StatusApproved},
		{raw: "expired", provider: StatusExpired, status: model.StatusCancelled},
		{raw: "created", provider: StatusCreated, status: model.StatusPending, noop: true},
		{raw: "refunded", provider: StatusUnrecognized, status: model.StatusPending, noop: true},
		{raw: "", provider: StatusUnrecognized, status: model.StatusPending, noop: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, err := Normalize(&model.WebhookPayload{ID: "abc", Status: tt.raw})

			require.NoError(t, err)
			assert.Equal(t, tt.provider, c.Provider)
			assert.Equal(t, tt.status, c.Status)
			assert.Equal(t, tt.noop, c.IsNoop())
			assert.Equal(t, tt.raw, c.RawStatus)
		})
	}
}

func TestNormalize_CarriesPayerAndAmount(t *testing.T) {
	value := int64(2590)

	c, err := Normalize(&model.WebhookPayload{
		ID:                        " abc-123 ",
		Status:                    "paid",
		Value:                     &value,
		EndToEndID:                "E000000002026",
		PayerName:                 "Maria Silva",
		PayerNationalRegistration: "12345678900",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc-123", c.TransactionRef)
	require.NotNil(t, c.Amount)
	assert.Equal(t, "25.90", c.Amount.StringFixed(2))
	assert.Equal(t, "Maria Silva", c.Payer.Name)
	assert.Equal(t, "12345678900", c.Payer.TaxID)
	assert.Equal(t, "E000000002026", c.Payer.EndToEndID)
}

func TestNormalize_MissingID(t *testing.T) {
	_, err := Normalize(&model.WebhookPayload{Status: "paid"})
	assert.ErrorIs(t, err, model.ErrInvalidWebhook)

	_, err = Normalize(nil)
	assert.ErrorIs(t, err, model.ErrInvalidWebhook)
}
