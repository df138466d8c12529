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

// GetAbout retrieves the single about-page record
func (r *ContentRepo) GetAbout(ctx context.Context) (*models.About, error) {
	query := `
		SELECT id, body, image_url, updated_at
		FROM about
		ORDER BY id
		LIMIT 1
	`

	var a models.About
	err := r.db.GetContext(ctx, &a, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get about page: %w", err)
	}
	return &a, nil
}

// UpdateAbout upserts the single about-page record
func (r *ContentRepo) UpdateAbout(ctx context.Context, a *models.About) error {
	a.UpdatedAt = time.Now()

	query := `
		INSERT INTO about (id, body, image_url, updated_at)
		VALUES (1, :body, :image_url, :updated_at)
		ON CONFLICT (id) DO UPDATE
		SET body = EXCLUDED.body, image_url = EXCLUDED.image_url, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return fmt.Errorf("failed to update about page: %w", err)
	}
	return nil
}

// CreateContactMessage stores a contact-form submission
func (r *ContentRepo) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	m.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES (:name, :email, :message, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns all contact-form submissions, newest first
func (r *ContentRepo) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	messages := []models.ContactMessage{}
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

// GetAdminByUsername retrieves a back-office account for login
func (r *ContentRepo) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`

	var a models.Admin
	err := r.db.GetContext(ctx, &a, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}
