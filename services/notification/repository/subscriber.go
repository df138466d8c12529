package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/notification"
)

const uniqueViolation = "23505"

// NotificationRepo implements notification.NotificationRepo over Postgres
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateSubscriber inserts a new subscriber. The email column carries a
// unique constraint; a violation maps to ErrDuplicateEmail.
func (r *NotificationRepo) CreateSubscriber(ctx context.Context, email string) (*models.Subscriber, error) {
	query := `
		INSERT INTO subscribers (email, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	sub := models.Subscriber{
		Email:     email,
		CreatedAt: time.Now(),
	}

	err := r.db.QueryRowContext(ctx, query, sub.Email, sub.CreatedAt).Scan(&sub.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, notification.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return &sub, nil
}

// ListSubscribers returns every mailing-list member
func (r *NotificationRepo) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY id
	`

	subscribers := []models.Subscriber{}
	err := r.db.SelectContext(ctx, &subscribers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}
