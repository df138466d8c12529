package donation

import (
	"context"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// PaymentGW is the boundary to the mobile-money provider. RequestToPay
// acknowledges immediately; settlement arrives later through the webhook.
type PaymentGW interface {
	RequestToPay(ctx context.Context, amount float64, phone, transactionID string) (*models.GatewayAck, error)
}
