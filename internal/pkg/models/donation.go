package models

import (
	"strings"
	"time"
)

// DonationStatus represents the lifecycle state of a donation record
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationConfirmed DonationStatus = "confirmed"
	DonationFailed    DonationStatus = "failed"
)

// Valid reports whether s is a known donation status
func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationConfirmed, DonationFailed:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions
func (s DonationStatus) Terminal() bool {
	return s == DonationConfirmed || s == DonationFailed
}

// validTransitions encodes the donation state machine. Terminal states have
// no outgoing edges; pending->pending is a re-delivery no-op.
var validTransitions = map[DonationStatus][]DonationStatus{
	DonationPending:   {DonationPending, DonationConfirmed, DonationFailed},
	DonationConfirmed: {},
	DonationFailed:    {},
}

// IsValidTransition checks if a status transition is allowed
func IsValidTransition(from, to DonationStatus) bool {
	allowed, exists := validTransitions[from]
	if !exists {
		return false
	}
	for _, validTo := range allowed {
		if validTo == to {
			return true
		}
	}
	return false
}

// providerStatusMap maps MTN MoMo status codes to internal states. Codes not
// listed here are rejected rather than defaulted to failed.
var providerStatusMap = map[string]DonationStatus{
	"SUCCESSFUL": DonationConfirmed,
	"SUCCESS":    DonationConfirmed,
	"COMPLETED":  DonationConfirmed,
	"FAILED":     DonationFailed,
	"REJECTED":   DonationFailed,
	"TIMEOUT":    DonationFailed,
	"EXPIRED":    DonationFailed,
	"PENDING":    DonationPending,
	"ACCEPTED":   DonationPending,
}

// MapProviderStatus resolves a provider status code to an internal donation
// status. The second return value is false for unrecognized codes.
func MapProviderStatus(code string) (DonationStatus, bool) {
	status, ok := providerStatusMap[strings.ToUpper(strings.TrimSpace(code))]
	return status, ok
}

// Donation represents a persisted donation attempt
type Donation struct {
	ID            int64          `json:"id" db:"id"`
	DonorName     string         `json:"donor_name" db:"donor_name"`
	Phone         string         `json:"phone" db:"phone"`
	Amount        float64        `json:"amount" db:"amount"`
	TransactionID string         `json:"transactionId" db:"transaction_id"`
	Status        DonationStatus `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// DonateRequest represents the public donation initiation payload
type DonateRequest struct {
	DonorName string  `json:"donor_name"`
	Phone     string  `json:"phone"`
	Amount    float64 `json:"amount"`
}

// GatewayAck is the immediate acknowledgment returned by the payment gateway
type GatewayAck struct {
	Acknowledged bool   `json:"acknowledged"`
	Reference    string `json:"reference"`
}

// DonateResponse is returned to the caller after a donation is initiated
type DonateResponse struct {
	Message       string      `json:"message"`
	TransactionID string      `json:"transactionId"`
	MTNResp       *GatewayAck `json:"mtnResp"`
}

// DonationStatusResponse is the public polling view of a donation
type DonationStatusResponse struct {
	TransactionID string         `json:"transactionId"`
	Status        DonationStatus `json:"status"`
	Amount        float64        `json:"amount"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// WebhookPayload is the inbound provider notification. Providers are not
// consistent about field names, so the transaction id is accepted under
// several aliases.
type WebhookPayload struct {
	TransactionID  string `json:"transactionId"`
	ExternalID     string `json:"externalId"`
	Reference      string `json:"reference"`
	TransactionRef string `json:"transactionRef"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
}

// TransactionKey returns the first non-empty transaction id alias
func (p *WebhookPayload) TransactionKey() string {
	for _, v := range []string{p.TransactionID, p.ExternalID, p.Reference, p.TransactionRef} {
		if v != "" {
			return v
		}
	}
	return ""
}

// StatusCode returns the provider status code, preferring the status field
func (p *WebhookPayload) StatusCode() string {
	if p.Status != "" {
		return p.Status
	}
	return p.PaymentStatus
}
