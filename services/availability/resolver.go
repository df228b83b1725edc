package availability

import (
	"context"
	"fmt"

	"vetbuddy/models"
	"vetbuddy/utils"

	"go.uber.org/zap"
)

const defaultClosureReason = "Clinic closed"

// Resolve returns the slot grid of a clinic for date with occupancy applied. A date
// override takes precedence over the weekly pattern, even on a weekday that is closed;
// closures take precedence over both. A slot is
// unavailable when an active booking sits at exactly its time, or when it is blocked.
// Bookings are matched on the grid time only; a service longer than one cell does not
// make the following cells unavailable.
func (s *DefaultAvailabilityService) Resolve(ctx context.Context, clinicID, dateStr, serviceID string) (*models.DaySlots, error) {
	date, err := ParseDate(dateStr, s.location())
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: err.Error()}
	}
	clinic, err := s.loadClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	settings := MergeDefaults(clinic.Availability)
	dayName := WeekdayName(date)
	day := settings.Days[dayName]

	result := &models.DaySlots{
		ClinicID:            clinicID,
		ClinicName:          clinic.DisplayName(),
		Date:                dateStr,
		DayName:             dayName,
		DayEnabled:          day.Enabled,
		ScheduleSource:      models.ScheduleWeekly,
		WorkingHours:        day,
		SlotDuration:        settings.SlotDuration,
		ServiceDuration:     serviceDuration(clinic, serviceID, settings.SlotDuration),
		Slots:               []models.CandidateSlot{},
		AcceptOnlineBooking: settings.AcceptOnlineBooking,
		RequireConfirmation: settings.RequireConfirmation,
	}
	override, hasOverride := settings.OverrideFor(dateStr)
	if hasOverride {
		result.ScheduleSource = models.ScheduleOverride
		result.Override = &override
		result.DayEnabled = true
	}

	if closure, closed := settings.ClosureFor(dateStr); closed {
		result.Blocked = true
		result.BlockReason = closure.Reason
		if result.BlockReason == "" {
			result.BlockReason = defaultClosureReason
		}
		return result, nil
	}
	if !result.DayEnabled {
		return result, nil
	}

	slots := Generate(date, settings)
	bookings, err := s.Bookings.GetByClinicAndDate(ctx, clinicID, dateStr, models.InactiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	bookedTimes := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		bookedTimes[b.Time] = true
	}
	blockedTimes := make(map[string]bool)
	for _, b := range settings.BlockedSlots {
		if b.Date == dateStr {
			blockedTimes[b.Time] = true
		}
	}

	for i := range slots {
		slots[i].Booked = bookedTimes[slots[i].Time]
		slots[i].Blocked = blockedTimes[slots[i].Time]
		slots[i].Available = !slots[i].Booked && !slots[i].Blocked
		if slots[i].Booked {
			result.BookedCount++
		}
		if slots[i].Available {
			result.AvailableCount++
		}
	}
	result.Slots = slots
	result.TotalSlots = len(slots)

	utils.GetLogger().Debug("resolved availability",
		zap.String("clinicID", clinicID),
		zap.String("date", dateStr),
		zap.Int("total", result.TotalSlots),
		zap.Int("available", result.AvailableCount))
	return result, nil
}

// serviceDuration is the catalogue duration of serviceID, or the grid duration.
func serviceDuration(clinic *models.Clinic, serviceID string, slotDuration int) int {
	if serviceID == "" {
		return slotDuration
	}
	if svc, ok := clinic.Service(serviceID); ok && svc.Duration > 0 {
		return svc.Duration
	}
	return slotDuration
}
