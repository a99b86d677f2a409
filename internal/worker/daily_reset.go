package worker

import (
	"context"
	"nextfund-ledger/internal/service"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DailyResetWorker runs the daily limit reset at every local midnight. An external
// scheduler may call the job endpoint instead; running both is harmless.
type DailyResetWorker struct {
	service  service.JobService
	location *time.Location
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
	now      func() time.Time
}

func NewDailyResetWorker(svc service.JobService, location *time.Location, logger zerolog.Logger) *DailyResetWorker {
	return &DailyResetWorker{
		service:  svc,
		location: location,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
		now:      time.Now,
	}
}

func (w *DailyResetWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.logger.Info().Str("timezone", w.location.String()).Msg("Daily reset worker started")

		for {
			wait := untilNextMidnight(w.now(), w.location)
			timer := time.NewTimer(wait)
			w.logger.Debug().Dur("wait", wait).Msg("Next daily reset scheduled")

			select {
			case <-timer.C:
				w.logger.Debug().Msg("Running daily reset")
				if _, err := w.service.ResetDailyLimits(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run daily reset")
				}
			case <-w.stopChan:
				timer.Stop()
				w.logger.Info().Msg("Daily reset worker stopping")
				return
			case <-ctx.Done():
				timer.Stop()
				w.logger.Info().Msg("Daily reset worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *DailyResetWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

// untilNextMidnight returns the time left until the next midnight in loc.
func untilNextMidnight(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	return next.Sub(local)
}
