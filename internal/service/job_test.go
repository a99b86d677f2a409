package service

import (
	"context"
	"errors"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/mocks/repository"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetDailyLimits(t *testing.T) {
	ctx := context.Background()

	accountRepo := mocks.NewAccountRepository(t)
	subRepo := mocks.NewSubscriptionRepository(t)
	jobRunRepo := mocks.NewJobRunRepository(t)
	dbManager := mocks.NewDBManager(t)

	dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	accountRepo.On("ResetDailyTasks", ctx, mock.Anything).Return(int64(1520), nil)
	subRepo.On("ExpireLapsed", ctx, fixedNow, mock.Anything).Return(int64(4), nil)
	jobRunRepo.On("InsertJobRun", ctx, mock.MatchedBy(func(run *model.JobRun) bool {
		return run.Name == JobDailyReset && run.RowsAffected == 1520 && run.ExpiredVipSub == 4
	}), mock.Anything).Return(nil)

	svc := NewJobService(accountRepo, subRepo, jobRunRepo, dbManager, zerolog.Nop()).(*JobServiceImpl)
	svc.now = clock

	resp, err := svc.ResetDailyLimits(ctx)

	require.NoError(t, err)
	assert.Equal(t, JobDailyReset, resp.Job)
	assert.Equal(t, int64(1520), resp.UsersReset)
	assert.Equal(t, int64(4), resp.ExpiredSubscriptions)
}

func TestResetDailyLimits_SecondRunTouchesNothing(t *testing.T) {
	ctx := context.Background()

	accountRepo := mocks.NewAccountRepository(t)
	subRepo := mocks.NewSubscriptionRepository(t)
	jobRunRepo := mocks.NewJobRunRepository(t)
	dbManager := mocks.NewDBManager(t)

	dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	accountRepo.On("ResetDailyTasks", ctx, mock.Anything).Return(int64(0), nil)
	subRepo.On("ExpireLapsed", ctx, fixedNow, mock.Anything).Return(int64(0), nil)
	jobRunRepo.On("InsertJobRun", ctx, mock.Anything, mock.Anything).Return(nil)

	svc := NewJobService(accountRepo, subRepo, jobRunRepo, dbManager, zerolog.Nop()).(*JobServiceImpl)
	svc.now = clock

	resp, err := svc.ResetDailyLimits(ctx)

	require.NoError(t, err)
	assert.Zero(t, resp.UsersReset)
}

func TestResetDailyLimits_Failure(t *testing.T) {
	ctx := context.Background()

	accountRepo := mocks.NewAccountRepository(t)
	subRepo := mocks.NewSubscriptionRepository(t)
	jobRunRepo := mocks.NewJobRunRepository(t)
	dbManager := mocks.NewDBManager(t)

	dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	accountRepo.On("ResetDailyTasks", ctx, mock.Anything).Return(int64(0), errors.New("connection reset"))

	svc := NewJobService(accountRepo, subRepo, jobRunRepo, dbManager, zerolog.Nop())

	resp, err := svc.ResetDailyLimits(ctx)

	assert.Nil(t, resp)
	assert.Error(t, err)
}
