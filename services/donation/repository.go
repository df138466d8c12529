package donation

import (
	"context"
	"time"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// DonationRepo is the persistence boundary for donation records. The store is
// the sole writer of donation state; status changes go through the
// conditional update so that terminal states are never overwritten.
type DonationRepo interface {
	CreateDonation(ctx context.Context, donation *models.Donation) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Donation, error)
	GetByID(ctx context.Context, id int64) (*models.Donation, error)
	ListDonations(ctx context.Context) ([]models.Donation, error)
	// UpdateStatusFromPending applies status only if the record is still
	// pending, returning whether a row was changed.
	UpdateStatusFromPending(ctx context.Context, transactionID string, status models.DonationStatus) (bool, error)
	// ExpirePending sweeps pending records created before cutoff to failed,
	// returning the number of rows swept.
	ExpirePending(ctx context.Context, cutoff time.Time) (int64, error)
}
