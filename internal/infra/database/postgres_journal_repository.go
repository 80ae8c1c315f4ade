package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/review"
)

const createDeliveriesTable = `CREATE TABLE IF NOT EXISTS homework_deliveries (
    id            BIGSERIAL PRIMARY KEY,
    homework_name TEXT        NOT NULL,
    status        TEXT        NOT NULL,
    message       TEXT        NOT NULL,
    cursor_date   BIGINT      NOT NULL,
    delivered_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresJournalRepository implements review.Journal on the homework_deliveries table.
type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the deliveries table when it does not exist yet.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDeliveriesTable); err != nil {
		return fmt.Errorf("error creating homework_deliveries table: %w", err)
	}
	return nil
}

func (r *PostgresJournalRepository) RecordDelivery(ctx context.Context, d *review.Delivery) error {
	query := `INSERT INTO homework_deliveries (homework_name, status, message, cursor_date)
              VALUES ($1, $2, $3, $4)
              RETURNING id, delivered_at`

	err := r.db.QueryRowContext(ctx, query, d.HomeworkName, string(d.Status), d.Message, d.Cursor).Scan(&d.ID, &d.DeliveredAt)
	if err != nil {
		return fmt.Errorf("error recording delivery for homework %q: %w", d.HomeworkName, err)
	}
	return nil
}

func (r *PostgresJournalRepository) ListRecentDeliveries(ctx context.Context, limit int) ([]*review.Delivery, error) {
	query := `SELECT id, homework_name, status, message, cursor_date, delivered_at
              FROM homework_deliveries ORDER BY delivered_at DESC, id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*review.Delivery
	for rows.Next() {
		d := &review.Delivery{}
		var status string
		if err := rows.Scan(&d.ID, &d.HomeworkName, &status, &d.Message, &d.Cursor, &d.DeliveredAt); err != nil {
			return nil, fmt.Errorf("error scanning delivery row: %w", err)
		}
		d.Status = review.Status(status)
		deliveries = append(deliveries, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delivery rows: %w", err)
	}
	return deliveries, nil
}
