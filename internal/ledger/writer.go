// Package ledger applies balance deltas. Every balance change in the service goes
// through Writer.Apply so that balance always equals the sum of ledger deltas.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var errEmptyEventID = errors.New("ledger: empty event id")

// Guard re-checks a precondition against the locked account before the delta is applied.
type Guard func(acc *model.Account) error

type ApplyRequest struct {
	UserID  int64
	Delta   decimal.Decimal
	Reason  model.EntryReason
	EventID string
	Guard   Guard
}

// Writer applies a delta inside the caller's database transaction.
type Writer interface {
	Apply(ctx context.Context, tx pgx.Tx, req ApplyRequest) (*model.LedgerEntry, error)
}

type WriterImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	idempotency repository.IdempotencyStore
	logger      zerolog.Logger
}

func NewWriter(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	idempotency repository.IdempotencyStore,
	logger zerolog.Logger,
) Writer {
	return &WriterImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		idempotency: idempotency,
		logger:      logger,
	}
}

// Apply records the event id, locks the account row, runs the guard, moves the
// balance and appends the entry. Any error must roll back the caller's transaction.
func (w *WriterImpl) Apply(ctx context.Context, tx pgx.Tx, req ApplyRequest) (*model.LedgerEntry, error) {
	if req.EventID == "" {
		return nil, errEmptyEventID
	}
	if req.Delta.IsZero() {
		return nil, fmt.Errorf("%w: zero delta for event %s", model.ErrInvalidAmount, req.EventID)
	}

	isNew, err := w.idempotency.RecordIfNew(ctx, req.EventID, tx)
	if err != nil {
		return nil, fmt.Errorf("record event: %w", err)
	}
	if !isNew {
		return nil, fmt.Errorf("%w: %s", model.ErrDuplicateEvent, req.EventID)
	}

	// Row lock linearizes every balance change of this user
	acc, err := w.accountRepo.GetAccountForUpdate(ctx, req.UserID, tx)
	if err != nil {
		return nil, fmt.Errorf("get account for update: %w", err)
	}

	if req.Guard != nil {
		if err := req.Guard(acc); err != nil {
			return nil, err
		}
	}

	newBalance := acc.Balance.Add(req.Delta)
	if newBalance.LessThan(decimal.Zero) {
		return nil, model.ErrInsufficientBalance
	}

	if err := w.accountRepo.UpdateBalance(ctx, req.UserID, newBalance, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	entry := &model.LedgerEntry{
		UserID:       req.UserID,
		EventID:      req.EventID,
		Delta:        req.Delta,
		BalanceAfter: newBalance,
		Reason:       req.Reason,
	}
	if err := w.ledgerRepo.InsertEntry(ctx, entry, tx); err != nil {
		if errors.Is(err, model.ErrDuplicateEvent) {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicateEvent, req.EventID)
		}
		return nil, fmt.Errorf("insert ledger entry: %w", err)
	}

	w.logger.Info().
		Int64("user_id", req.UserID).
		Str("event_id", req.EventID).
		Str("reason", req.Reason.String()).
		Str("delta", req.Delta.StringFixed(2)).
		Str("old_balance", acc.Balance.StringFixed(2)).
		Str("new_balance", newBalance.StringFixed(2)).
		Msg("ledger entry applied")

	return entry, nil
}
