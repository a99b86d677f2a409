package postgres

import (
	"context"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.JobRunRepository = (*JobRunRepositoryImpl)(nil)

type JobRunRepositoryImpl struct {
	*TransactionManager
}

func NewJobRunRepository(pool *pgxpool.Pool) repository.JobRunRepository {
	return &JobRunRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *JobRunRepositoryImpl) InsertJobRun(ctx context.Context, run *model.JobRun, tx pgx.Tx) error {
	query := `
        INSERT INTO job_runs (name, rows_affected, expired_subscriptions, started_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, finished_at`

	if err := tx.QueryRow(ctx, query, run.Name, run.RowsAffected, run.ExpiredVipSub, run.StartedAt).Scan(&run.ID, &run.FinishedAt); err != nil {
		return storageErr("insert job run", err)
	}
	return nil
}
