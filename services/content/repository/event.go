package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
)

// CreateEvent inserts a new event in pending status
func (r *ContentRepo) CreateEvent(ctx context.Context, e *models.Event) error {
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Status == "" {
		e.Status = models.EventPending
	}

	query := `
		INSERT INTO events (title, venue, description, event_date, status, created_at, updated_at)
		VALUES (:title, :venue, :description, :event_date, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, e)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves a single event
func (r *ContentRepo) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, title, venue, description, event_date, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var e models.Event
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

// ListEvents returns all events, soonest first
func (r *ContentRepo) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, venue, description, event_date, status, created_at, updated_at
		FROM events
		ORDER BY event_date ASC
	`

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpdateEvent updates an event's details without touching its status
func (r *ContentRepo) UpdateEvent(ctx context.Context, e *models.Event) error {
	e.UpdatedAt = time.Now()

	query := `
		UPDATE events
		SET title = :title, venue = :venue, description = :description,
		    event_date = :event_date, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, e)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return checkAffected(result)
}

// UpdateEventStatus sets an event's lifecycle status
func (r *ContentRepo) UpdateEventStatus(ctx context.Context, id int64, status models.EventStatus) error {
	query := `
		UPDATE events
		SET status = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	return checkAffected(result)
}

// DeleteEvent removes an event
func (r *ContentRepo) DeleteEvent(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return checkAffected(result)
}
