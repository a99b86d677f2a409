package service

import (
	"context"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const JobDailyReset = "daily_reset"

type JobServiceImpl struct {
	accountRepo repository.AccountRepository
	subRepo     repository.SubscriptionRepository
	jobRunRepo  repository.JobRunRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
	now         func() time.Time
}

func NewJobService(
	accountRepo repository.AccountRepository,
	subRepo repository.SubscriptionRepository,
	jobRunRepo repository.JobRunRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) JobService {
	return &JobServiceImpl{
		accountRepo: accountRepo,
		subRepo:     subRepo,
		jobRunRepo:  jobRunRepo,
		dbManager:   dbManager,
		logger:      logger,
		now:         time.Now,
	}
}

// ResetDailyLimits zeroes every daily counter and expires lapsed subscriptions in one
// transaction, writing one audit row. Running it twice leaves the same state.
func (s *JobServiceImpl) ResetDailyLimits(ctx context.Context) (*model.JobResponse, error) {
	run := &model.JobRun{Name: JobDailyReset, StartedAt: s.now()}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		users, err := s.accountRepo.ResetDailyTasks(ctx, tx)
		if err != nil {
			return fmt.Errorf("reset daily tasks: %w", err)
		}

		expired, err := s.subRepo.ExpireLapsed(ctx, run.StartedAt, tx)
		if err != nil {
			return fmt.Errorf("expire subscriptions: %w", err)
		}

		run.RowsAffected = users
		run.ExpiredVipSub = expired
		run.FinishedAt = s.now()

		if err := s.jobRunRepo.InsertJobRun(ctx, run, tx); err != nil {
			return fmt.Errorf("insert job run: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("job", JobDailyReset).Msg("daily reset failed")
		return nil, err
	}

	s.logger.Info().
		Str("job", JobDailyReset).
		Int64("users_reset", run.RowsAffected).
		Int64("expired_subscriptions", run.ExpiredVipSub).
		Dur("duration", run.FinishedAt.Sub(run.StartedAt)).
		Msg("daily reset completed")

	return &model.JobResponse{
		Job:                  JobDailyReset,
		UsersReset:           run.RowsAffected,
		ExpiredSubscriptions: run.ExpiredVipSub,
	}, nil
}
