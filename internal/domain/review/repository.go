// internal/domain/review/repository.go
package review

import (
	"context"
)

// API fetches homework statuses changed since a Unix timestamp.
type API interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (Response, error)
}

// Journal keeps a history of delivered status notifications.
type Journal interface {
	RecordDelivery(ctx context.Context, d *Delivery) error
	ListRecentDeliveries(ctx context.Context, limit int) ([]*Delivery, error)
}

// NopJournal discards deliveries. Used when no database is configured.
type NopJournal struct{}

func (NopJournal) RecordDelivery(context.Context, *Delivery) error { return nil }

func (NopJournal) ListRecentDeliveries(context.Context, int) ([]*Delivery, error) { return nil, nil }
