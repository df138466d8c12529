package nsq

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/models"
	nsqpkg "github.com/irakoze/inanga/internal/pkg/nsq"
	"github.com/irakoze/inanga/services/notification"
)

// NewEventConfirmedHandler returns the NSQ message handler for confirmed
// events. Returning an error requeues the message; the dedupe layer keeps
// redeliveries from double-mailing subscribers.
func NewEventConfirmedHandler(uc notification.NotificationUC, logger *logrus.Logger) nsqpkg.MessageHandler {
	return func(body []byte) error {
		var msg models.EventConfirmedMessage
		if err := nsqpkg.UnmarshalMessage(body, &msg); err != nil {
			// Malformed payloads can never succeed; drop instead of requeueing.
			logger.WithError(err).Error("Dropping malformed event.confirmed message")
			return nil
		}

		logger.WithFields(logrus.Fields{
			"event_id": msg.EventID,
			"title":    msg.Title,
		}).Info("Processing confirmed event notification")

		return uc.NotifyEventConfirmed(context.Background(), &msg)
	}
}
