package booking

import (
	"context"
	"time"

	bookingRepo "vetbuddy/database/repository/booking"
	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/models"
	"vetbuddy/services/availability"
	"vetbuddy/services/notification"

	"github.com/hibiken/asynq"
)

// BookingService turns an owner's online request into a stored booking.
type BookingService interface {
	RequestBooking(ctx context.Context, clinicID, ownerID string, input models.BookingRequestInput) (*models.Booking, error)
}

// ReminderScheduler enqueues delayed tasks; *asynq.Client satisfies it.
type ReminderScheduler interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Clinics      clinicRepo.ClinicRepository
	Bookings     bookingRepo.BookingRepository
	Availability availability.AvailabilityService
	Notification notification.NotificationService
	// Reminders may be nil, in which case no reminder is scheduled.
	Reminders    ReminderScheduler
	ReminderLead time.Duration
	Location     *time.Location
	Now          func() time.Time
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now().In(s.location())
	}
	return s.Now().In(s.location())
}
