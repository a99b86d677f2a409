package service

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/policy"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// resolveTier returns the tier granted by the user's active subscription, or the free tier
func resolveTier(ctx context.Context, subRepo repository.SubscriptionRepository, p *policy.Policy, userID int64, now time.Time, tx ...pgx.Tx) (policy.Tier, error) {
	sub, err := subRepo.GetActiveSubscription(ctx, userID, now, tx...)
	if err != nil {
		if errors.Is(err, model.ErrNoActiveSubscription) {
			return p.TierFor(nil), nil
		}
		return policy.Tier{}, fmt.Errorf("get active subscription: %w", err)
	}
	return p.TierFor(sub), nil
}

// maxAmount is the largest value a NUMERIC(15,2) column holds
var maxAmount = decimal.RequireFromString("9999999999999.99")

// parseAmount validates a client-supplied BRL amount
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if amount.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount exceeds %s", model.ErrInvalidAmount, maxAmount.StringFixed(2))
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("%w: at most two decimal places", model.ErrInvalidAmount)
	}
	return amount, nil
}

// deliver hands a notification to the queue after commit. Failures are logged only:
// the balance change is already durable.
func deliver(ctx context.Context, notifier notify.Notifier, logger zerolog.Logger, n *model.Notification) {
	if n == nil {
		return
	}
	if err := notifier.Notify(ctx, n); err != nil {
		logger.Error().Err(err).Str("notification_id", n.ID).Int64("user_id", n.UserID).Msg("failed to queue notification")
	}
}
