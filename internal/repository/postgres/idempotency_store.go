package postgres

import (
	"context"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.IdempotencyStore = (*IdempotencyStoreImpl)(nil)

// IdempotencyStoreImpl keeps processed event ids in processed_events.
type IdempotencyStoreImpl struct {
	*TransactionManager
}

func NewIdempotencyStore(pool *pgxpool.Pool) repository.IdempotencyStore {
	return &IdempotencyStoreImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// RecordIfNew inserts eventID. ON CONFLICT keeps the surrounding transaction usable;
// a concurrent insert of the same id blocks until the other transaction ends.
func (r *IdempotencyStoreImpl) RecordIfNew(ctx context.Context, eventID string, tx pgx.Tx) (bool, error) {
	query := `INSERT INTO processed_events (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`

	commandTag, err := r.getExecutor(tx).Exec(ctx, query, eventID)
	if err != nil {
		// fail closed: an unknown outcome never counts as new
		return false, fmt.Errorf("%w: record event %s: %v", model.ErrStorageUnavailable, eventID, err)
	}
	return commandTag.RowsAffected() == 1, nil
}
