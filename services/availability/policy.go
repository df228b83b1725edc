package availability

import (
	"context"
	"fmt"
	"time"

	"vetbuddy/models"
)

// Validate checks whether a booking at date and timeOfDay is acceptable under the clinic's
// booking policy. It never writes; the booking flow decides what to do with the result.
func (s *DefaultAvailabilityService) Validate(ctx context.Context, clinicID, date, timeOfDay string) (*models.PolicyDecision, error) {
	if _, err := ParseDate(date, s.location()); err != nil {
		return nil, &ValidationError{Field: "date", Message: err.Error()}
	}
	if _, err := ParseTimeOfDay(timeOfDay); err != nil {
		return nil, &ValidationError{Field: "time", Message: err.Error()}
	}
	clinic, err := s.loadClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(clinic, date, timeOfDay)
}

// Evaluate applies the policy to an already loaded clinic. Checks run in a fixed order and
// the first failing one decides the reason.
func (s *DefaultAvailabilityService) Evaluate(clinic *models.Clinic, dateStr, timeOfDay string) (*models.PolicyDecision, error) {
	date, err := ParseDate(dateStr, s.location())
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: err.Error()}
	}
	minutes, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, &ValidationError{Field: "time", Message: err.Error()}
	}

	settings := MergeDefaults(clinic.Availability)
	now := s.now()

	if closure, closed := settings.ClosureFor(dateStr); closed {
		msg := "the clinic is closed on " + dateStr
		if closure.Reason != "" {
			msg += " (" + closure.Reason + ")"
		}
		return reject(ReasonClosure, msg), nil
	}

	if days := daysBetween(now, date); days > settings.MaxAdvanceBookingDays {
		return reject(ReasonTooFarAdvance,
			fmt.Sprintf("bookings open at most %d days in advance", settings.MaxAdvanceBookingDays)), nil
	}

	start := atMinute(date, minutes)
	minLead := time.Duration(settings.MinAdvanceBookingHours) * time.Hour
	if start.Sub(now) < minLead {
		return reject(ReasonTooSoon,
			fmt.Sprintf("bookings must be made at least %d hours in advance", settings.MinAdvanceBookingHours)), nil
	}

	slots, source := generate(date, settings)
	switch {
	case source == models.ScheduleOverride && len(slots) == 0:
		return reject(ReasonDayClosed, "the clinic does not take appointments on "+dateStr), nil
	case source == models.ScheduleWeekly && !settings.Days[WeekdayName(date)].Enabled:
		return reject(ReasonDayClosed, "the clinic does not take appointments on "+WeekdayName(date)), nil
	}

	if !containsSlot(slots, timeOfDay) {
		return reject(ReasonMisalignedTime, timeOfDay+" is not a bookable slot start"), nil
	}

	for _, b := range settings.BlockedSlots {
		if b.Date == dateStr && b.Time == timeOfDay {
			return reject(ReasonSlotBlocked, timeOfDay+" is not available on "+dateStr), nil
		}
	}

	return &models.PolicyDecision{Allowed: true}, nil
}

func reject(reason, message string) *models.PolicyDecision {
	return &models.PolicyDecision{Allowed: false, Reason: reason, Message: message}
}
