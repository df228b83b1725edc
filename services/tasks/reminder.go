package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"vetbuddy/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSendReminder = "reminder:send"
	reminderRetries  = 3
)

// BookingReminder builds the clinic reminder for booking b, due lead before start.
func BookingReminder(b *models.Booking, start time.Time, lead time.Duration) (models.ReminderPayload, time.Time) {
	fireAt := start.Add(-lead)
	return models.ReminderPayload{
		BookingID: b.ID,
		ClinicID:  b.ClinicID,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("Appointment on %s at %s", b.Date, b.Time),
		FireDate:  fireAt.Format(time.RFC3339),
	}, fireAt
}

// NewReminderTask schedules payload at fireAt. The task ID is derived from the booking, so
// enqueueing the same booking twice is rejected by asynq instead of sending two pushes.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	if payload.BookingID == "" {
		return nil, nil, fmt.Errorf("reminder without booking ID")
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.BookingID),
		asynq.MaxRetry(reminderRetries),
	}
	return asynq.NewTask(TypeSendReminder, b), opts, nil
}

// ParseReminder decodes the payload of a reminder task.
func ParseReminder(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}
