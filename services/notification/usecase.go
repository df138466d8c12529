package notification

import (
	"context"
	"time"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// NotificationUC is the subscriber and mail fan-out boundary
type NotificationUC interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error)
	NotifyEventConfirmed(ctx context.Context, msg *models.EventConfirmedMessage) error
}

// Deduper guards against sending the same notification twice. Satisfied by
// the redis client.
type Deduper interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}
