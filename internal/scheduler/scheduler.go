package scheduler

import (
	"context"
	"time"

	"github.com/paisable/paisable/internal/logger"
)

// RecurringProcessor materializes due recurring templates into ledger rows.
type RecurringProcessor interface {
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}

// Scheduler periodically processes due recurring transactions.
type Scheduler struct {
	processor     RecurringProcessor
	checkInterval time.Duration
	notifyCh      chan struct{}
}

// New creates a scheduler ticking at the given interval.
func New(processor RecurringProcessor, checkInterval time.Duration) *Scheduler {
	return &Scheduler{
		processor:     processor,
		checkInterval: checkInterval,
		notifyCh:      make(chan struct{}, 1),
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (s *Scheduler) Notify() {
	select {
	case s.notifyCh <- struct{}{}:
	default:
	}
}

// Run processes due templates until the context is cancelled. One check runs
// at startup so restarts do not delay overdue templates by a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("recurring scheduler stopped")
			return
		case <-ticker.C:
			s.check(ctx)
		case <-s.notifyCh:
			s.check(ctx)
		}
	}
}

func (s *Scheduler) check(ctx context.Context) {
	processed, err := s.processor.ProcessDue(ctx, time.Now())
	if err != nil {
		logger.Log.Errorw("recurring processing failed", "err", err)
		return
	}
	if processed > 0 {
		logger.Log.Infow("recurring transactions materialized", "count", processed)
	}
}
