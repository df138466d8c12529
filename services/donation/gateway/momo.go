package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/pkg/retry"
)

// MoMoGateway simulates an MTN mobile-money collection provider. It
// acknowledges a request-to-pay immediately and settles it out-of-band:
// after a configured delay the outcome is posted to the webhook endpoint as
// a real HTTP callback, so the inbound confirmation path is exercised the
// same way a production provider would.
type MoMoGateway struct {
	callbackURL string
	delay       time.Duration
	successRate float64
	client      *http.Client
	retrier     *retry.Retrier
	log         *logrus.Logger
}

// NewMoMoGateway creates a gateway stub from config
func NewMoMoGateway(cfg *models.Config, log *logrus.Logger) *MoMoGateway {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 5
	retryCfg.BaseDelay = 500 * time.Millisecond
	retryCfg.MaxDelay = 10 * time.Second

	return &MoMoGateway{
		callbackURL: cfg.Donation.CallbackURL,
		delay:       time.Duration(cfg.Donation.GatewayDelayMs) * time.Millisecond,
		successRate: cfg.Donation.GatewaySuccessRate,
		client:      &http.Client{Timeout: 10 * time.Second},
		retrier:     retry.New(retryCfg, log),
		log:         log,
	}
}

// RequestToPay acknowledges the collection request immediately and schedules
// the out-of-band settlement. It never blocks on the outcome.
func (g *MoMoGateway) RequestToPay(ctx context.Context, amount float64, phone, transactionID string) (*models.GatewayAck, error) {
	reference := uuid.NewString()

	g.log.WithFields(logrus.Fields{
		"transaction_id": transactionID,
		"reference":      reference,
		"amount":         amount,
		"phone":          phone,
	}).Info("Payment request acknowledged")

	go g.settle(transactionID, reference)

	return &models.GatewayAck{Acknowledged: true, Reference: reference}, nil
}

// settle resolves the payment after the settlement delay and delivers the
// outcome through the webhook endpoint with bounded retries. Exhausting the
// retries leaves the record pending for the expiry sweeper.
func (g *MoMoGateway) settle(transactionID, reference string) {
	time.Sleep(g.delay)

	status := "SUCCESSFUL"
	if rand.Float64() >= g.successRate {
		status = "FAILED"
	}

	payload, err := json.Marshal(map[string]string{
		"transactionId": transactionID,
		"reference":     reference,
		"status":        status,
	})
	if err != nil {
		g.log.WithError(err).Error("Failed to marshal webhook payload")
		return
	}

	err = g.retrier.Execute(context.Background(), func(ctx context.Context) error {
		return g.deliver(ctx, payload)
	})
	if err != nil {
		g.log.WithError(err).WithFields(logrus.Fields{
			"transaction_id": transactionID,
			"status":         status,
		}).Error("Webhook delivery failed after all retries, donation left pending")
		return
	}

	g.log.WithFields(logrus.Fields{
		"transaction_id": transactionID,
		"status":         status,
	}).Info("Webhook delivered")
}

func (g *MoMoGateway) deliver(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.callbackURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
