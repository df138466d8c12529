package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTransition(t *testing.T) {
	testCases := []struct {
		name string
		from DonationStatus
		to   DonationStatus
		want bool
	}{
		{name: "pending to confirmed", from: DonationPending, to: DonationConfirmed, want: true},
		{name: "pending to failed", from: DonationPending, to: DonationFailed, want: true},
		{name: "pending re-delivery", from: DonationPending, to: DonationPending, want: true},
		{name: "confirmed to failed", from: DonationConfirmed, to: DonationFailed, want: false},
		{name: "confirmed to pending", from: DonationConfirmed, to: DonationPending, want: false},
		{name: "failed to confirmed", from: DonationFailed, to: DonationConfirmed, want: false},
		{name: "unknown source", from: DonationStatus("bogus"), to: DonationConfirmed, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidTransition(tc.from, tc.to))
		})
	}
}

func TestMapProviderStatus(t *testing.T) {
	testCases := []struct {
		code   string
		want   DonationStatus
		wantOK bool
	}{
		{code: "SUCCESSFUL", want: DonationConfirmed, wantOK: true},
		{code: "completed", want: DonationConfirmed, wantOK: true},
		{code: " Success ", want: DonationConfirmed, wantOK: true},
		{code: "FAILED", want: DonationFailed, wantOK: true},
		{code: "rejected", want: DonationFailed, wantOK: true},
		{code: "TIMEOUT", want: DonationFailed, wantOK: true},
		{code: "PENDING", want: DonationPending, wantOK: true},
		{code: "ACCEPTED", want: DonationPending, wantOK: true},
		{code: "PAID_MAYBE", wantOK: false},
		{code: "", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			got, ok := MapProviderStatus(tc.code)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestWebhookPayloadAliases(t *testing.T) {
	p := &WebhookPayload{ExternalID: "DON-1", Reference: "ref-2"}
	assert.Equal(t, "DON-1", p.TransactionKey())

	p = &WebhookPayload{TransactionRef: "DON-9"}
	assert.Equal(t, "DON-9", p.TransactionKey())

	p = &WebhookPayload{}
	assert.Equal(t, "", p.TransactionKey())

	p = &WebhookPayload{Status: "SUCCESSFUL", PaymentStatus: "FAILED"}
	assert.Equal(t, "SUCCESSFUL", p.StatusCode())

	p = &WebhookPayload{PaymentStatus: "FAILED"}
	assert.Equal(t, "FAILED", p.StatusCode())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, DonationPending.Terminal())
	assert.True(t, DonationConfirmed.Terminal())
	assert.True(t, DonationFailed.Terminal())
	assert.True(t, DonationPending.Valid())
	assert.False(t, DonationStatus("done").Valid())
}
