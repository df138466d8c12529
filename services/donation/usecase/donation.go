package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/donation"
)

// DonationUC implements the donation.DonationUC interface
type DonationUC struct {
	cfg  *models.Config
	repo donation.DonationRepo
	gw   donation.PaymentGW
	log  *logrus.Logger
}

// NewDonationUC creates a new donation use case
func NewDonationUC(cfg *models.Config, repo donation.DonationRepo, gw donation.PaymentGW, log *logrus.Logger) *DonationUC {
	return &DonationUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
		log:  log,
	}
}

// newTransactionID generates a correlation key unique with overwhelming
// probability: millisecond timestamp prefix plus a random uuid segment.
func newTransactionID() string {
	return fmt.Sprintf("DON-%d-%s", time.Now().UnixMilli(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// InitiateDonation validates donor input, persists a pending record and asks
// the gateway to collect. Validation reports every violated field, not just
// the first.
func (uc *DonationUC) InitiateDonation(ctx context.Context, req *models.DonateRequest) (*models.DonateResponse, error) {
	var fields []donation.FieldError

	if strings.TrimSpace(req.DonorName) == "" {
		fields = append(fields, donation.FieldError{Field: "donor_name", Message: "donor name is required"})
	}

	phone := ""
	if strings.TrimSpace(req.Phone) == "" {
		fields = append(fields, donation.FieldError{Field: "phone", Message: "phone is required"})
	} else if _, formatted, err := utils.ValidateMSISDN(req.Phone); err != nil {
		fields = append(fields, donation.FieldError{Field: "phone", Message: "phone is not a valid mobile number"})
	} else {
		phone = formatted
	}

	if req.Amount <= 0 {
		fields = append(fields, donation.FieldError{Field: "amount", Message: "amount must be greater than zero"})
	}

	if len(fields) > 0 {
		return nil, &donation.ValidationError{Fields: fields}
	}

	d := &models.Donation{
		DonorName:     strings.TrimSpace(req.DonorName),
		Phone:         phone,
		Amount:        req.Amount,
		TransactionID: newTransactionID(),
		Status:        models.DonationPending,
	}

	if err := uc.repo.CreateDonation(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	ack, err := uc.gw.RequestToPay(ctx, d.Amount, d.Phone, d.TransactionID)
	if err != nil {
		// The pending record stays behind for the expiry sweeper.
		uc.log.WithError(err).WithField("transaction_id", d.TransactionID).
			Error("Gateway request-to-pay failed after persisting pending record")
		return nil, fmt.Errorf("%w: %v", donation.ErrGatewayUnavailable, err)
	}

	uc.log.WithFields(logrus.Fields{
		"transaction_id": d.TransactionID,
		"amount":         d.Amount,
	}).Info("Donation initiated")

	return &models.DonateResponse{
		Message:       "Donation initiated",
		TransactionID: d.TransactionID,
		MTNResp:       ack,
	}, nil
}

// GetStatus returns the donation matching a transaction id
func (uc *DonationUC) GetStatus(ctx context.Context, transactionID string) (*models.Donation, error) {
	return uc.repo.GetByTransactionID(ctx, transactionID)
}

// ApplyTransition moves a donation to target, enforcing the monotonic state
// machine: only pending records change, re-delivery of the current state is a
// no-op, and a different target on a terminal record is reported as a
// TerminalStateError.
func (uc *DonationUC) ApplyTransition(ctx context.Context, transactionID string, target models.DonationStatus) error {
	if !target.Valid() {
		return &donation.ValidationError{Fields: []donation.FieldError{
			{Field: "status", Message: fmt.Sprintf("unknown status %q", target)},
		}}
	}

	if target == models.DonationPending {
		// Re-delivered "still pending" notification: verify the record
		// exists, change nothing.
		if _, err := uc.repo.GetByTransactionID(ctx, transactionID); err != nil {
			return err
		}
		return nil
	}

	updated, err := uc.repo.UpdateStatusFromPending(ctx, transactionID, target)
	if err != nil {
		return err
	}
	if updated {
		uc.log.WithFields(logrus.Fields{
			"transaction_id": transactionID,
			"status":         target,
		}).Info("Donation transitioned")
		return nil
	}

	// Nothing matched the conditional update: either the record is missing
	// or it already reached a terminal state.
	current, err := uc.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}
	if current.Status == target {
		// Duplicate delivery of the same terminal state is harmless.
		return nil
	}
	return &donation.TerminalStateError{Current: current.Status, Target: target}
}

// ApplyTransitionByID routes an admin override through the same transition
// function as the webhook path
func (uc *DonationUC) ApplyTransitionByID(ctx context.Context, id int64, target models.DonationStatus) error {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return uc.ApplyTransition(ctx, d.TransactionID, target)
}

// ListDonations returns all donation records for the admin surface
func (uc *DonationUC) ListDonations(ctx context.Context) ([]models.Donation, error) {
	return uc.repo.ListDonations(ctx)
}

// ExpireStale sweeps pending donations older than the configured window to
// failed, closing the orphaned-pending gap left by gateway failures and lost
// callbacks
func (uc *DonationUC) ExpireStale(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-time.Duration(uc.cfg.Donation.PendingExpiryMin) * time.Minute)
	swept, err := uc.repo.ExpirePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if swept > 0 {
		uc.log.WithField("count", swept).Warn("Expired stale pending donations")
	}
	return swept, nil
}
