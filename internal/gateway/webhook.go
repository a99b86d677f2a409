package gateway

import (
	"fmt"
	"nextfund-ledger/internal/model"
	"strings"

	"github.com/shopspring/decimal"
)

// ProviderStatus is the closed set of charge statuses the provider reports.
// Anything else is kept as StatusUnrecognized together with the raw string.
type ProviderStatus int

const (
	StatusUnrecognized ProviderStatus = iota
	StatusCreated
	StatusPaid
	StatusExpired
)

func ParseProviderStatus(raw string) ProviderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "created":
		return StatusCreated
	case "paid":
		return StatusPaid
	case "expired":
		return StatusExpired
	default:
		return StatusUnrecognized
	}
}

func (s ProviderStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusPaid:
		return "paid"
	case StatusExpired:
		return "expired"
	default:
		return "unrecognized"
	}
}

// Confirmation is a webhook translated into the internal status taxonomy.
type Confirmation struct {
	TransactionRef string
	Provider       ProviderStatus
	RawStatus      string
	Status         model.TransactionStatus
	Amount         *decimal.Decimal
	Payer          model.PayerInfo
}

// IsNoop reports whether the confirmation requires no state change.
func (c Confirmation) IsNoop() bool {
	return c.Status == model.StatusPending
}

// Normalize maps a provider payload to a Confirmation: paid -> approved,
// expired -> cancelled, everything else -> pending.
func Normalize(payload *model.WebhookPayload) (Confirmation, error) {
	if payload == nil || strings.TrimSpace(payload.ID) == "" {
		return Confirmation{}, fmt.Errorf("%w: missing transaction id", model.ErrInvalidWebhook)
	}

	provider := ParseProviderStatus(payload.Status)
	c := Confirmation{
		TransactionRef: strings.TrimSpace(payload.ID),
		Provider:       provider,
		RawStatus:      payload.Status,
		Payer: model.PayerInfo{
			Name:       payload.PayerName,
			TaxID:      payload.PayerNationalRegistration,
			EndToEndID: payload.EndToEndID,
		},
	}

	switch provider {
	case StatusPaid:
		c.Status = model.StatusApproved
	case StatusExpired:
		c.Status = model.StatusCancelled
	default:
		c.Status = model.StatusPending
	}

	if payload.Value != nil {
		amount := FromCentavos(*payload.Value)
		c.Amount = &amount
	}

	return c, nil
}
