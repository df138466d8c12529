package donation

import (
	"context"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// DonationUC is the donation workflow boundary. ApplyTransition is the single
// entry point for status changes regardless of caller (webhook, admin
// override, sweeper).
type DonationUC interface {
	InitiateDonation(ctx context.Context, req *models.DonateRequest) (*models.DonateResponse, error)
	GetStatus(ctx context.Context, transactionID string) (*models.Donation, error)
	ApplyTransition(ctx context.Context, transactionID string, target models.DonationStatus) error
	ApplyTransitionByID(ctx context.Context, id int64, target models.DonationStatus) error
	ListDonations(ctx context.Context) ([]models.Donation, error)
	ExpireStale(ctx context.Context) (int64, error)
}
