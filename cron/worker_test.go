package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vetbuddy/models"
	"vetbuddy/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendClinicPushNotification(ctx context.Context, clinicID, title, body string, data map[string]string) error {
	return m.Called(ctx, clinicID, title, body, data).Error(0)
}

func reminderTask(t *testing.T, p models.ReminderPayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(tasks.TypeSendReminder, b)
}

func TestHandleReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		BookingID: "b1",
		ClinicID:  "c1",
		Title:     "Upcoming appointment",
		Body:      "Appointment on 2025-03-04 at 10:00",
		FireDate:  "2025-03-04T09:00:00Z",
	}

	t.Run("pushes to the clinic", func(t *testing.T) {
		notif := new(MockNotificationService)
		notif.On("SendClinicPushNotification", mock.Anything, "c1", payload.Title, payload.Body,
			map[string]string{"bookingId": "b1", "fireDate": payload.FireDate}).Return(nil)

		err := handleReminderTask(notif)(context.Background(), reminderTask(t, payload))
		require.NoError(t, err)
		notif.AssertExpectations(t)
	})

	t.Run("send failures are retried", func(t *testing.T) {
		notif := new(MockNotificationService)
		notif.On("SendClinicPushNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("fcm unavailable"))

		err := handleReminderTask(notif)(context.Background(), reminderTask(t, payload))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		notif := new(MockNotificationService)

		err := handleReminderTask(notif)(context.Background(), asynq.NewTask(tasks.TypeSendReminder, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		notif.AssertNotCalled(t, "SendClinicPushNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("payload without clinic is dropped", func(t *testing.T) {
		notif := new(MockNotificationService)

		err := handleReminderTask(notif)(context.Background(), reminderTask(t, models.ReminderPayload{BookingID: "b1"}))
		assert.NoError(t, err)
		notif.AssertNotCalled(t, "SendClinicPushNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
