package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/donation"
)

// Sweeper periodically expires stale pending donations
type Sweeper struct {
	uc       donation.DonationUC
	interval time.Duration
	log      *logrus.Logger
}

// NewSweeper creates a sweeper from config
func NewSweeper(cfg *models.Config, uc donation.DonationUC, log *logrus.Logger) *Sweeper {
	return &Sweeper{
		uc:       uc,
		interval: time.Duration(cfg.Donation.SweepIntervalMin) * time.Minute,
		log:      log,
	}
}

// Start runs the sweep loop until ctx is cancelled
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.uc.ExpireStale(ctx); err != nil {
					s.log.WithError(err).Error("Donation expiry sweep failed")
				}
			}
		}
	}()
}
