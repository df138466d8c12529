package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
	"github.com/irakoze/inanga/services/content/mocks"
)

func setupUsecaseTest(t *testing.T) (*mocks.MockContentRepo, *mocks.MockPublisher, *ContentUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockContentRepo(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := &models.Config{
		NSQ: models.NSQConfig{EventTopic: "event.confirmed"},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Issuer:     "inanga-test",
			Expiration: 60,
		},
	}

	return repo, publisher, NewContentUC(cfg, repo, publisher, log)
}

func pendingEvent() *models.Event {
	return &models.Event{
		ID:        7,
		Title:     "Kigali Jazz Junction",
		Venue:     "BK Arena",
		EventDate: time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
		Status:    models.EventPending,
	}
}

func TestUpdateEventStatus_ConfirmPublishesAnnouncement(t *testing.T) {
	repo, publisher, uc := setupUsecaseTest(t)

	repo.EXPECT().GetEvent(gomock.Any(), int64(7)).Return(pendingEvent(), nil)
	repo.EXPECT().UpdateEventStatus(gomock.Any(), int64(7), models.EventConfirmed).Return(nil)
	publisher.EXPECT().
		Publish("event.confirmed", gomock.Any()).
		DoAndReturn(func(_ string, message interface{}) error {
			msg, ok := message.(models.EventConfirmedMessage)
			require.True(t, ok)
			assert.Equal(t, int64(7), msg.EventID)
			assert.Equal(t, "Kigali Jazz Junction", msg.Title)
			return nil
		})

	err := uc.UpdateEventStatus(context.Background(), 7, models.EventConfirmed)
	assert.NoError(t, err)
}

func TestUpdateEventStatus_CancelDoesNotPublish(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	repo.EXPECT().GetEvent(gomock.Any(), int64(7)).Return(pendingEvent(), nil)
	repo.EXPECT().UpdateEventStatus(gomock.Any(), int64(7), models.EventCancelled).Return(nil)

	err := uc.UpdateEventStatus(context.Background(), 7, models.EventCancelled)
	assert.NoError(t, err)
}

func TestUpdateEventStatus_ReconfirmDoesNotRepublish(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	confirmed := pendingEvent()
	confirmed.Status = models.EventConfirmed

	repo.EXPECT().GetEvent(gomock.Any(), int64(7)).Return(confirmed, nil)
	repo.EXPECT().UpdateEventStatus(gomock.Any(), int64(7), models.EventConfirmed).Return(nil)

	err := uc.UpdateEventStatus(context.Background(), 7, models.EventConfirmed)
	assert.NoError(t, err)
}

func TestUpdateEventStatus_PublishFailureDoesNotFail(t *testing.T) {
	repo, publisher, uc := setupUsecaseTest(t)

	repo.EXPECT().GetEvent(gomock.Any(), int64(7)).Return(pendingEvent(), nil)
	repo.EXPECT().UpdateEventStatus(gomock.Any(), int64(7), models.EventConfirmed).Return(nil)
	publisher.EXPECT().
		Publish("event.confirmed", gomock.Any()).
		Return(errors.New("nsqd unreachable"))

	// The status change is the source of truth; publish is best effort.
	err := uc.UpdateEventStatus(context.Background(), 7, models.EventConfirmed)
	assert.NoError(t, err)
}

func TestUpdateEventStatus_InvalidStatus(t *testing.T) {
	_, _, uc := setupUsecaseTest(t)

	err := uc.UpdateEventStatus(context.Background(), 7, models.EventStatus("archived"))
	assert.ErrorIs(t, err, content.ErrInvalidInput)
}

func TestUpdateEventStatus_UnknownEvent(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	repo.EXPECT().GetEvent(gomock.Any(), int64(99)).Return(nil, content.ErrNotFound)

	err := uc.UpdateEventStatus(context.Background(), 99, models.EventConfirmed)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestCreateEvent_Validation(t *testing.T) {
	_, _, uc := setupUsecaseTest(t)

	err := uc.CreateEvent(context.Background(), &models.Event{Title: "No venue"})
	assert.ErrorIs(t, err, content.ErrInvalidInput)

	err = uc.CreateEvent(context.Background(), &models.Event{Title: "No date", Venue: "Somewhere"})
	assert.ErrorIs(t, err, content.ErrInvalidInput)
}
