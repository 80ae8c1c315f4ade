package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one poll cycle. Its error is logged by the scheduler and never stops the loop.
type Job func(ctx context.Context) error

// PollScheduler runs a Job back to back, waiting for the next slot of a cron schedule
// after every cycle. Cycles never overlap.
type PollScheduler struct {
	schedule cron.Schedule
	logger   logrus.FieldLogger
	now      func() time.Time
	wait     func(ctx context.Context, d time.Duration) error
}

// NewPollScheduler parses spec with the standard cron parser, so both
// "@every 10m" and five-field expressions like "*/10 * * * *" are accepted.
func NewPollScheduler(spec string, logger logrus.FieldLogger) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollScheduler{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
		wait:     sleepContext,
	}, nil
}

// Run polls until ctx is cancelled.
func (s *PollScheduler) Run(ctx context.Context, job Job) {
	s.logger.Info("Starting poll scheduler...")
	for ctx.Err() == nil {
		s.runCycle(ctx, job)
	}
	s.logger.Info("Poll scheduler stopped.")
}

func (s *PollScheduler) runCycle(ctx context.Context, job Job) {
	// Deferred first so it also runs after a recovered panic.
	defer s.waitForNextSlot(ctx)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Poll cycle panicked: %v\n%s", r, debug.Stack())
		}
	}()

	if err := job(ctx); err != nil {
		s.logger.WithError(err).Debug("Poll cycle failed.")
		return
	}
	s.logger.Debug("Poll cycle finished.")
}

func (s *PollScheduler) waitForNextSlot(ctx context.Context) {
	now := s.now()
	delay := s.schedule.Next(now).Sub(now)
	s.logger.Debugf("Next poll in %s.", delay)
	if err := s.wait(ctx, delay); err != nil {
		s.logger.Debugf("Wait interrupted: %v", err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
