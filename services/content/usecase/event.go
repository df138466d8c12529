package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
)

// CreateEvent validates and stores a new event
func (uc *ContentUC) CreateEvent(ctx context.Context, e *models.Event) error {
	if err := requireField(e.Title, "title"); err != nil {
		return err
	}
	if err := requireField(e.Venue, "venue"); err != nil {
		return err
	}
	if e.EventDate.IsZero() {
		return fmt.Errorf("%w: event_date is required", content.ErrInvalidInput)
	}
	return uc.repo.CreateEvent(ctx, e)
}

// ListEvents returns all events
func (uc *ContentUC) ListEvents(ctx context.Context) ([]models.Event, error) {
	return uc.repo.ListEvents(ctx)
}

// UpdateEvent validates and updates an event's details
func (uc *ContentUC) UpdateEvent(ctx context.Context, e *models.Event) error {
	if err := requireField(e.Title, "title"); err != nil {
		return err
	}
	return uc.repo.UpdateEvent(ctx, e)
}

// UpdateEventStatus sets an event's lifecycle status. Confirming an event
// publishes an announcement for the subscriber fan-out; publish failures are
// logged rather than rolling back the status change, since the status update
// is the source of truth.
func (uc *ContentUC) UpdateEventStatus(ctx context.Context, id int64, status models.EventStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown event status %q", content.ErrInvalidInput, status)
	}

	event, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.UpdateEventStatus(ctx, id, status); err != nil {
		return err
	}

	if status == models.EventConfirmed && event.Status != models.EventConfirmed {
		msg := models.EventConfirmedMessage{
			EventID:   event.ID,
			Title:     event.Title,
			Venue:     event.Venue,
			EventDate: event.EventDate,
		}
		topic := uc.cfg.NSQ.EventTopic
		if err := uc.publisher.Publish(topic, msg); err != nil {
			uc.log.WithError(err).WithFields(logrus.Fields{
				"event_id": event.ID,
				"topic":    topic,
			}).Error("Failed to publish event confirmation")
		}
	}

	return nil
}

// DeleteEvent removes an event
func (uc *ContentUC) DeleteEvent(ctx context.Context, id int64) error {
	return uc.repo.DeleteEvent(ctx, id)
}
