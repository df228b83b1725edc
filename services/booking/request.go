package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/models"
	"vetbuddy/services/availability"
	"vetbuddy/services/tasks"
	"vetbuddy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestBooking validates the request against the clinic's policy and stores it. A slot
// is taken when any booking outside the inactive statuses holds it, the same rule the
// slot view uses. The insert is also conditional on the slot being free, so two
// concurrent requests for the same cell cannot both succeed; the loser gets ErrSlotTaken.
// Notifications are best effort.
func (s *DefaultBookingService) RequestBooking(
	ctx context.Context,
	clinicID, ownerID string,
	input models.BookingRequestInput,
) (*models.Booking, error) {
	logger := utils.GetLogger()

	clinic, err := s.Clinics.GetByID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, clinicRepo.ErrClinicNotFound) {
			return nil, &availability.NotFoundError{Resource: "clinic", ID: clinicID}
		}
		return nil, err
	}

	settings := availability.MergeDefaults(clinic.Availability)
	if !settings.AcceptOnlineBooking {
		return nil, &availability.PolicyRejection{
			Reason:  availability.ReasonOnlineBookingDisabled,
			Message: "the clinic does not accept online bookings",
		}
	}

	decision, err := s.Availability.Evaluate(clinic, input.Date, input.Time)
	if err != nil {
		return nil, err
	}
	if rejection := availability.RejectionFromDecision(decision); rejection != nil {
		logger.Info("booking request rejected by policy",
			zap.String("clinicID", clinicID), zap.String("reason", decision.Reason))
		return nil, rejection
	}

	taken, err := s.slotTaken(ctx, clinicID, input.Date, input.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		logger.Info("booking request for occupied slot",
			zap.String("clinicID", clinicID), zap.String("date", input.Date), zap.String("time", input.Time))
		return nil, ErrSlotTaken
	}

	duration := settings.SlotDuration
	if svc, ok := clinic.Service(input.ServiceID); ok && svc.Duration > 0 {
		duration = svc.Duration
	}

	status := models.StatusConfirmed
	if settings.RequireConfirmation {
		status = models.StatusPending
	}

	now := s.now()
	booking := &models.Booking{
		ID:        uuid.New().String(),
		ClinicID:  clinicID,
		OwnerID:   ownerID,
		PetID:     input.PetID,
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Time:      input.Time,
		Duration:  duration,
		Status:    status,
		Notes:     input.Notes,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("clinicID", clinicID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
		zap.String("status", booking.Status))

	s.notifyClinic(ctx, clinic, booking)
	s.scheduleReminder(booking)
	return booking, nil
}

func (s *DefaultBookingService) slotTaken(ctx context.Context, clinicID, date, hhmm string) (bool, error) {
	existing, err := s.Bookings.GetByClinicAndDate(ctx, clinicID, date, models.InactiveStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to load bookings: %w", err)
	}
	for _, b := range existing {
		if b.Time == hhmm {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultBookingService) notifyClinic(ctx context.Context, clinic *models.Clinic, b *models.Booking) {
	if s.Notification == nil {
		return
	}
	title := "New appointment"
	if b.Status == models.StatusPending {
		title = "New appointment request"
	}
	body := fmt.Sprintf("%s at %s", b.Date, b.Time)
	data := map[string]string{"bookingId": b.ID, "status": b.Status}

	if err := s.Notification.SendClinicPushNotification(ctx, clinic.ID, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify clinic", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	date, err := availability.ParseDate(b.Date, s.location())
	if err != nil {
		return
	}
	minutes, err := availability.ParseTimeOfDay(b.Time)
	if err != nil {
		return
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, s.location())
	payload, fireAt := tasks.BookingReminder(b, start, s.ReminderLead)
	if !fireAt.After(s.now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to schedule reminder", zap.String("bookingID", b.ID), zap.Error(err))
	}
}
