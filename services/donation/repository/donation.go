package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/donation"
)

// DonationRepo implements donation.DonationRepo over Postgres
type DonationRepo struct {
	db *sqlx.DB
}

// NewDonationRepo creates a new donation repository
func NewDonationRepo(db *sqlx.DB) *DonationRepo {
	return &DonationRepo{db: db}
}

// CreateDonation inserts a new pending donation record
func (r *DonationRepo) CreateDonation(ctx context.Context, d *models.Donation) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	query := `
		INSERT INTO donations (donor_name, phone, amount, transaction_id, status, created_at, updated_at)
		VALUES (:donor_name, :phone, :amount, :transaction_id, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, d)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}
	return nil
}

// GetByTransactionID retrieves a donation by its transaction identifier
func (r *DonationRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Donation, error) {
	query := `
		SELECT id, donor_name, phone, amount, transaction_id, status, created_at, updated_at
		FROM donations
		WHERE transaction_id = $1
	`

	var d models.Donation
	err := r.db.GetContext(ctx, &d, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donation.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return &d, nil
}

// GetByID retrieves a donation by its surrogate id
func (r *DonationRepo) GetByID(ctx context.Context, id int64) (*models.Donation, error) {
	query := `
		SELECT id, donor_name, phone, amount, transaction_id, status, created_at, updated_at
		FROM donations
		WHERE id = $1
	`

	var d models.Donation
	err := r.db.GetContext(ctx, &d, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donation.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return &d, nil
}

// ListDonations returns all donations, newest first
func (r *DonationRepo) ListDonations(ctx context.Context) ([]models.Donation, error) {
	query := `
		SELECT id, donor_name, phone, amount, transaction_id, status, created_at, updated_at
		FROM donations
		ORDER BY created_at DESC
	`

	donations := []models.Donation{}
	err := r.db.SelectContext(ctx, &donations, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// UpdateStatusFromPending applies the status transition only when the record
// is still pending. The condition makes concurrent or duplicate webhook
// deliveries race-free: at most one delivery wins the compare-and-swap.
func (r *DonationRepo) UpdateStatusFromPending(ctx context.Context, transactionID string, status models.DonationStatus) (bool, error) {
	query := `
		UPDATE donations
		SET status = $2, updated_at = $3
		WHERE transaction_id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, transactionID, status, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to update donation status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}

// ExpirePending sweeps stale pending records to failed through the same
// conditional shape as UpdateStatusFromPending
func (r *DonationRepo) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE donations
		SET status = 'failed', updated_at = $2
		WHERE status = 'pending' AND created_at < $1
	`

	result, err := r.db.ExecContext(ctx, query, cutoff, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending donations: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}
