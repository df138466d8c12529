package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/mail"
	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/pkg/retry"
	"github.com/irakoze/inanga/services/notification"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dedupeTTL bounds how long a sent-notification marker lives. A week covers
// any realistic NSQ redelivery window.
const dedupeTTL = 7 * 24 * time.Hour

// NotificationUC implements the subscriber and mail fan-out workflows
type NotificationUC struct {
	repo    notification.NotificationRepo
	deduper notification.Deduper
	mailer  mail.Mailer
	retrier *retry.Retrier
	log     *logrus.Logger
}

// NewNotificationUC creates a new notification usecase
func NewNotificationUC(
	repo notification.NotificationRepo,
	deduper notification.Deduper,
	mailer mail.Mailer,
	log *logrus.Logger,
) *NotificationUC {
	return &NotificationUC{
		repo:    repo,
		deduper: deduper,
		mailer:  mailer,
		retrier: retry.NewWithDefaults(log),
		log:     log,
	}
}

// Subscribe validates and registers a mailing-list member
func (uc *NotificationUC) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, notification.ErrInvalidEmail
	}
	return uc.repo.CreateSubscriber(ctx, email)
}

// NotifyEventConfirmed fans a confirmed-event announcement out to every
// subscriber. Listing failures propagate so the message is requeued;
// per-recipient delivery failures are logged and skipped so one bad mailbox
// never blocks the rest.
func (uc *NotificationUC) NotifyEventConfirmed(ctx context.Context, msg *models.EventConfirmedMessage) error {
	subscribers, err := uc.repo.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load subscribers: %w", err)
	}

	subject := fmt.Sprintf("Confirmed: %s", msg.Title)
	body := fmt.Sprintf(
		"The show %q has been confirmed.\n\nVenue: %s\nDate: %s\n\nSee you there!",
		msg.Title, msg.Venue, msg.EventDate.Format("Monday, 2 January 2006 at 15:04"),
	)

	for _, sub := range subscribers {
		key := fmt.Sprintf("notify:event:%d:sub:%d", msg.EventID, sub.ID)
		fresh, err := uc.deduper.SetNX(ctx, key, 1, dedupeTTL)
		if err != nil {
			uc.log.WithError(err).WithField("key", key).Warn("Dedupe check failed, sending anyway")
		} else if !fresh {
			continue
		}

		to := sub.Email
		err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
			return uc.mailer.Send(to, subject, body, "")
		})
		if err != nil {
			uc.log.WithError(err).WithFields(logrus.Fields{
				"event_id": msg.EventID,
				"email":    to,
			}).Error("Failed to deliver event notification")
		}
	}

	return nil
}
