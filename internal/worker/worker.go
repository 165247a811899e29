package worker

import (
	"context"
	"sync"
	"time"

	"escrow-service/internal/service"

	"github.com/rs/zerolog"
)

// Task is one unit of periodic work; it returns how many items it processed
type Task func(ctx context.Context) (int, error)

// PeriodicWorker runs a Task on a fixed interval until stopped
type PeriodicWorker struct {
	name     string
	task     Task
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewPeriodicWorker(name string, task Task, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		task:     task,
		interval: interval,
		logger:   logger.With().Str("worker", name).Logger(),
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

// NewExpiryWorker cancels unpaid transactions past the payment timeout
func NewExpiryWorker(svc service.ExpiryService, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return NewPeriodicWorker("expiry", svc.ExpireStaleTransactions, interval, logger)
}

// NewAssignmentWorker retries moderator assignment for disputes still waiting on one
func NewAssignmentWorker(svc service.DisputeService, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return NewPeriodicWorker("dispute_assignment", svc.AssignPending, interval, logger)
}

func (w *PeriodicWorker) Name() string {
	return w.name
}

func (w *PeriodicWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("worker started")

		for {
			select {
			case <-ticker.C:
				w.run(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *PeriodicWorker) run(ctx context.Context) {
	start := time.Now()
	processed, err := w.task(ctx)
	if err != nil {
		w.logger.Error().Err(err).Int("processed", processed).Msg("worker task failed")
		return
	}
	if processed > 0 {
		w.logger.Info().Int("processed", processed).Dur("elapsed", time.Since(start)).Msg("worker task completed")
		return
	}
	w.logger.Debug().Dur("elapsed", time.Since(start)).Msg("worker task found nothing to do")
}

// Stop is safe to call more than once
func (w *PeriodicWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
