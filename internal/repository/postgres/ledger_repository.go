package postgres

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertEntry appends a ledger entry
func (r *LedgerRepositoryImpl) InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (user_id, event_id, delta, balance_after, reason)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.UserID, entry.EventID, entry.Delta, entry.BalanceAfter, entry.Reason).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateEvent
		}
		return storageErr("insert ledger entry", err)
	}
	return nil
}

// GetEntriesByUser retrieves paginated ledger entries for a user
func (r *LedgerRepositoryImpl) GetEntriesByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	query := `
        SELECT id, user_id, event_id, delta, balance_after, reason, created_at
        FROM ledger_entries WHERE user_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, storageErr("query ledger entries", err)
	}
	defer rows.Close()

	var entries []*model.LedgerEntry
	for rows.Next() {
		entry := &model.LedgerEntry{}
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.EventID, &entry.Delta, &entry.BalanceAfter, &entry.Reason, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SumDeltas returns the sum of all ledger deltas for a user
func (r *LedgerRepositoryImpl) SumDeltas(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE user_id = $1`

	var sum decimal.Decimal
	if err := r.getExecutor(tx...).QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return decimal.Zero, storageErr("sum ledger deltas", err)
	}
	return sum, nil
}
