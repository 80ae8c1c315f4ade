// internal/app/status_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/review"

	"github.com/sirupsen/logrus"
)

// StatusService runs one poll cycle at a time: it asks the review API for homeworks changed
// since the cursor and tells the chat about the latest one.
// It is not safe for concurrent use; the scheduler never overlaps cycles.
type StatusService struct {
	api      review.API
	notifier *Notifier
	journal  review.Journal
	logger   logrus.FieldLogger
	cursor   int64
}

// NewStatusService creates the service with the cursor set to startCursor, normally the start time.
// A nil journal disables delivery history.
func NewStatusService(api review.API, notifier *Notifier, journal review.Journal, logger logrus.FieldLogger, startCursor int64) *StatusService {
	if journal == nil {
		journal = review.NopJournal{}
	}
	return &StatusService{
		api:      api,
		notifier: notifier,
		journal:  journal,
		logger:   logger,
		cursor:   startCursor,
	}
}

// Cursor returns the from_date that the next cycle will query with.
func (s *StatusService) Cursor() int64 {
	return s.cursor
}

// PollOnce runs a single cycle. A failed cycle is reported to the chat as a diagnostic
// message and leaves the cursor where it was, so no submission is skipped.
func (s *StatusService) PollOnce(ctx context.Context) error {
	err := s.checkStatus(ctx)
	if err == nil {
		return nil
	}

	s.logger.WithError(err).Error("Status check failed")
	if ctx.Err() == nil {
		s.notifier.Notify(ctx, fmt.Sprintf("Program failure: %v", err))
	}
	return err
}

func (s *StatusService) checkStatus(ctx context.Context) error {
	resp, err := s.api.HomeworkStatuses(ctx, s.cursor)
	if err != nil {
		return err
	}
	next := review.NextCursor(resp, s.cursor)

	hw, err := review.ExtractLatest(resp)
	if err != nil {
		return err
	}
	message, err := review.FormatStatus(hw)
	if err != nil {
		return err
	}

	delivered := s.notifier.Notify(ctx, message)

	if next != s.cursor {
		s.logger.Debugf("Cursor advanced from %d to %d", s.cursor, next)
	}
	s.cursor = next

	if delivered {
		s.recordDelivery(ctx, hw, message)
	}
	return nil
}

func (s *StatusService) recordDelivery(ctx context.Context, hw review.Homework, message string) {
	d := &review.Delivery{
		HomeworkName: fmt.Sprint(hw[review.KeyHomeworkName]),
		Status:       review.Status(fmt.Sprint(hw[review.KeyStatus])),
		Message:      message,
		Cursor:       s.cursor,
		DeliveredAt:  time.Now(),
	}
	if err := s.journal.RecordDelivery(ctx, d); err != nil {
		s.logger.WithError(err).Warnf("Failed to record delivery for homework %q", d.HomeworkName)
	}
}
