package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/pkg/retry"
)

func newTestRetrier() *retry.Retrier {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 5
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 10 * time.Millisecond
	cfg.Jitter = false
	return retry.New(cfg, quietLogger())
}

func testGatewayConfig(callbackURL string, successRate float64) *models.Config {
	return &models.Config{
		Donation: models.DonationConfig{
			CallbackURL:        callbackURL,
			GatewayDelayMs:     1,
			GatewaySuccessRate: successRate,
		},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRequestToPay_AcknowledgesImmediately(t *testing.T) {
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	g := NewMoMoGateway(testGatewayConfig(server.URL, 1.0), quietLogger())

	start := time.Now()
	ack, err := g.RequestToPay(context.Background(), 1000, "250781234567", "DON-test-1")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.NotEmpty(t, ack.Reference)
	// Acknowledgment must not wait for settlement.
	assert.Less(t, elapsed, 500*time.Millisecond)

	select {
	case body := <-received:
		assert.Equal(t, "DON-test-1", body["transactionId"])
		assert.Equal(t, ack.Reference, body["reference"])
		assert.Equal(t, "SUCCESSFUL", body["status"])
	case <-time.After(5 * time.Second):
		t.Fatal("webhook callback never delivered")
	}
}

func TestSettle_AlwaysFailRate(t *testing.T) {
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	g := NewMoMoGateway(testGatewayConfig(server.URL, 0.0), quietLogger())

	_, err := g.RequestToPay(context.Background(), 500, "250781234567", "DON-test-2")
	require.NoError(t, err)

	select {
	case body := <-received:
		assert.Equal(t, "FAILED", body["status"])
	case <-time.After(5 * time.Second):
		t.Fatal("webhook callback never delivered")
	}
}

func TestSettle_RetriesOnDeliveryFailure(t *testing.T) {
	var calls int32
	delivered := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		delivered <- struct{}{}
	}))
	defer server.Close()

	g := NewMoMoGateway(testGatewayConfig(server.URL, 1.0), quietLogger())
	// Tighten the retry schedule for the test.
	g.retrier = newTestRetrier()

	_, err := g.RequestToPay(context.Background(), 100, "250781234567", "DON-test-3")
	require.NoError(t, err)

	select {
	case <-delivered:
		assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
	case <-time.After(5 * time.Second):
		t.Fatal("webhook delivery was never retried to success")
	}
}
