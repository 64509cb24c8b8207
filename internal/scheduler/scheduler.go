// Package scheduler runs the periodic snapshot of fund returns.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// Materializer stores a dated snapshot of every fund's returns.
type Materializer interface {
	Materialize(ctx context.Context, asOf time.Time) ([]model.FundReturnSnapshot, error)
}

// Scheduler materializes fund returns on a cron schedule evaluated in UTC.
type Scheduler struct {
	cron         *cron.Cron
	materializer Materializer
	log          *zap.SugaredLogger
	now          func() time.Time
	timeout      time.Duration
}

const defaultJobTimeout = 5 * time.Minute

// New creates a Scheduler for the five-field cron expression spec.
// Returns an error if spec cannot be parsed.
func New(spec string, materializer Materializer, log *zap.SugaredLogger) (*Scheduler, error) {
	s := &Scheduler{
		cron:         cron.New(cron.WithLocation(time.UTC)),
		materializer: materializer,
		log:          log,
		now:          time.Now,
		timeout:      defaultJobTimeout,
	}
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the schedule in the background until Stop is called.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infow("snapshot scheduler started", "next_run", s.cron.Entries()[0].Next)
}

// Stop halts the schedule and waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.log.Info("snapshot scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("snapshot scheduler stop timed out")
	}
}

// RunOnce materializes the returns of every fund as of the current time.
// Failures are logged; the next scheduled run tries again.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	snapshots, err := s.materializer.Materialize(ctx, s.now().UTC())
	if err != nil {
		s.log.Errorw("snapshot materialization failed", "error", err)
		return
	}
	s.log.Infow("snapshot materialization complete",
		"funds", len(snapshots),
		"elapsed", time.Since(start),
	)
}
