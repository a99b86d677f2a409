package worker

import (
	"context"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/mocks/service"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntilNextMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 23:30 local
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, 30*time.Minute, untilNextMidnight(now, loc))

	// exactly midnight schedules the following day
	midnight := time.Date(2026, 10, 16, 0, 0, 0, 0, loc)
	assert.Equal(t, 24*time.Hour, untilNextMidnight(midnight, loc))

	// the instant is converted before computing the boundary
	utc := time.Date(2026, 10, 16, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour, untilNextMidnight(utc, loc))
}

func TestDailyResetWorker_RunsAtMidnight(t *testing.T) {
	svc := mocks.NewJobService(t)
	done := make(chan struct{})

	svc.On("ResetDailyLimits", context.Background()).Return(func(ctx context.Context) (*model.JobResponse, error) {
		select {
		case <-done:
		default:
			close(done)
		}
		return &model.JobResponse{Job: "daily_reset"}, nil
	})

	w := NewDailyResetWorker(svc, time.UTC, zerolog.Nop())
	// 50ms before midnight
	w.now = func() time.Time { return time.Date(2026, 10, 15, 23, 59, 59, 950_000_000, time.UTC) }

	w.Start(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("daily reset did not run")
	}
	w.Stop()
}

func TestDailyResetWorker_StopsOnContextCancel(t *testing.T) {
	svc := mocks.NewJobService(t)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewDailyResetWorker(svc, time.UTC, zerolog.Nop())
	w.Start(ctx)
	cancel()

	finished := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
