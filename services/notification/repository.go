package notification

import (
	"context"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// NotificationRepo manages the subscriber mailing list
type NotificationRepo interface {
	CreateSubscriber(ctx context.Context, email string) (*models.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]models.Subscriber, error)
}
