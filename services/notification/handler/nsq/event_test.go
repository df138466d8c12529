package nsq

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/notification/mocks"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestEventConfirmedHandler_DispatchesToUsecase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	mockUC.EXPECT().
		NotifyEventConfirmed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, msg *models.EventConfirmedMessage) error {
			assert.Equal(t, int64(42), msg.EventID)
			assert.Equal(t, "Kigali Jazz Junction", msg.Title)
			return nil
		})

	handler := NewEventConfirmedHandler(mockUC, quietLogger())

	err := handler([]byte(`{"event_id":42,"title":"Kigali Jazz Junction","venue":"BK Arena","event_date":"2026-09-12T19:00:00Z"}`))
	assert.NoError(t, err)
}

func TestEventConfirmedHandler_MalformedPayloadDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	// Usecase must not be invoked for garbage.

	handler := NewEventConfirmedHandler(mockUC, quietLogger())

	err := handler([]byte(`{not json`))
	assert.NoError(t, err)
}

func TestEventConfirmedHandler_UsecaseErrorRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	mockUC.EXPECT().
		NotifyEventConfirmed(gomock.Any(), gomock.Any()).
		Return(errors.New("subscribers unavailable"))

	handler := NewEventConfirmedHandler(mockUC, quietLogger())

	err := handler([]byte(`{"event_id":1,"title":"x"}`))
	assert.Error(t, err)
}
