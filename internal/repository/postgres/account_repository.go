package postgres

import (
	"context"
	"errors"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const accountColumns = `id, balance, vip_level, daily_tasks_completed, extra_videos_available, version, created_at, updated_at`

func scanAccount(row pgx.Row) (*model.Account, error) {
	acc := &model.Account{}
	err := row.Scan(&acc.ID, &acc.Balance, &acc.VipLevel, &acc.DailyTasksCompleted, &acc.ExtraVideosAvailable, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// GetAccount retrieves an account without locking
func (r *AccountRepositoryImpl) GetAccount(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1`

	acc, err := scanAccount(r.getExecutor(tx...).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, storageErr("get account", err)
	}
	return acc, nil
}

// GetAccountForUpdate retrieves an account with row-level lock
func (r *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	acc, err := scanAccount(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, storageErr("get account for update", err)
	}
	return acc, nil
}

// UpdateBalance update user balance
func (r *AccountRepositoryImpl) UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientBalance
		}
		return storageErr("update balance", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// RecordTaskCompletion counts a rewarded video against today's quota
func (r *AccountRepositoryImpl) RecordTaskCompletion(ctx context.Context, userID int64, useExtra bool, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET daily_tasks_completed = daily_tasks_completed + 1, updated_at = NOW()
        WHERE id = $1`
	if useExtra {
		query = `
        UPDATE users
        SET extra_videos_available = extra_videos_available - 1, updated_at = NOW()
        WHERE id = $1 AND extra_videos_available > 0`
	}

	commandTag, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return storageErr("record task completion", err)
	}
	if commandTag.RowsAffected() == 0 {
		if useExtra {
			return model.ErrLimitExceeded
		}
		return model.ErrUserNotFound
	}
	return nil
}

// SetVipLevel updates the user's tier
func (r *AccountRepositoryImpl) SetVipLevel(ctx context.Context, userID int64, level int, tx pgx.Tx) error {
	query := `UPDATE users SET vip_level = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, level, userID)
	if err != nil {
		return storageErr("set vip level", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// ResetDailyTasks zeroes every non-zero daily counter in a single statement
func (r *AccountRepositoryImpl) ResetDailyTasks(ctx context.Context, tx pgx.Tx) (int64, error) {
	query := `UPDATE users SET daily_tasks_completed = 0, updated_at = NOW() WHERE daily_tasks_completed <> 0`

	commandTag, err := tx.Exec(ctx, query)
	if err != nil {
		return 0, storageErr("reset daily tasks", err)
	}
	return commandTag.RowsAffected(), nil
}
