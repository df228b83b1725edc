package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/models"
	"vetbuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetSettings returns the clinic's availability settings with defaults filled in.
func (s *DefaultAvailabilityService) GetSettings(ctx context.Context, clinicID string) (*models.AvailabilitySettings, error) {
	clinic, err := s.loadClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	settings := MergeDefaults(clinic.Availability)
	return &settings, nil
}

// UpdateSettings validates and persists the fields present in update. Absent fields keep
// their stored values; concurrent updates resolve as last write wins.
func (s *DefaultAvailabilityService) UpdateSettings(ctx context.Context, clinicID string, update models.AvailabilityUpdate) (*models.AvailabilitySettings, error) {
	if clinicID == "" {
		return nil, invalid("clinicId", "is required")
	}
	if update.IsEmpty() {
		return nil, invalid("", "no availability fields to update")
	}
	if err := ValidateUpdate(update); err != nil {
		return nil, err
	}

	fields := updateFields(update)
	fields["availability.updatedAt"] = s.now().UTC()

	if err := s.Clinics.UpdateAvailability(ctx, clinicID, fields); err != nil {
		if errors.Is(err, clinicRepo.ErrClinicNotFound) {
			return nil, &NotFoundError{Resource: "clinic", ID: clinicID}
		}
		return nil, err
	}

	utils.GetLogger().Info("availability settings updated",
		zap.String("clinicID", clinicID), zap.Int("fields", len(fields)))
	return s.GetSettings(ctx, clinicID)
}

// updateFields maps the present fields of update onto dotted $set paths. Each day is
// written under its own key so that updating one weekday leaves the others alone.
func updateFields(u models.AvailabilityUpdate) bson.M {
	fields := bson.M{}
	for name, day := range u.Days {
		fields["availability.days."+name] = day
	}
	if u.SlotDuration != nil {
		fields["availability.slotDuration"] = *u.SlotDuration
	}
	if u.AcceptOnlineBooking != nil {
		fields["availability.acceptOnlineBooking"] = *u.AcceptOnlineBooking
	}
	if u.RequireConfirmation != nil {
		fields["availability.requireConfirmation"] = *u.RequireConfirmation
	}
	if u.MaxAdvanceBookingDays != nil {
		fields["availability.maxAdvanceBookingDays"] = *u.MaxAdvanceBookingDays
	}
	if u.MinAdvanceBookingHours != nil {
		fields["availability.minAdvanceBookingHours"] = *u.MinAdvanceBookingHours
	}
	if u.SpecialClosures != nil {
		fields["availability.specialClosures"] = append([]models.SpecialClosure{}, (*u.SpecialClosures)...)
	}
	if u.BlockedSlots != nil {
		fields["availability.blockedSlots"] = append([]models.BlockedSlot{}, (*u.BlockedSlots)...)
	}
	if u.DateOverrides != nil {
		overrides := make(map[string]models.DayOverride, len(*u.DateOverrides))
		for date, o := range *u.DateOverrides {
			overrides[date] = o
		}
		fields["availability.dateOverrides"] = overrides
	}
	return fields
}

// ValidateUpdate rejects structurally invalid settings before anything is persisted.
func ValidateUpdate(u models.AvailabilityUpdate) error {
	for name, day := range u.Days {
		if err := validateDay(name, day); err != nil {
			return err
		}
	}
	if u.SlotDuration != nil {
		if d := *u.SlotDuration; d < MinSlotDuration || d > MaxSlotDuration {
			return invalid("slotDuration", "must be between %d and %d minutes", MinSlotDuration, MaxSlotDuration)
		}
	}
	if u.MaxAdvanceBookingDays != nil && *u.MaxAdvanceBookingDays < 0 {
		return invalid("maxAdvanceBookingDays", "must not be negative")
	}
	if u.MinAdvanceBookingHours != nil && *u.MinAdvanceBookingHours < 0 {
		return invalid("minAdvanceBookingHours", "must not be negative")
	}
	if u.SpecialClosures != nil {
		for i, c := range *u.SpecialClosures {
			if err := validateClosure(i, c); err != nil {
				return err
			}
		}
	}
	if u.BlockedSlots != nil {
		for i, b := range *u.BlockedSlots {
			field := fmt.Sprintf("blockedSlots[%d]", i)
			if !isDate(b.Date) {
				return invalid(field, "date %q must be YYYY-MM-DD", b.Date)
			}
			if _, err := ParseTimeOfDay(b.Time); err != nil {
				return invalid(field, "%v", err)
			}
		}
	}
	if u.DateOverrides != nil {
		for date, o := range *u.DateOverrides {
			if err := validateOverride(date, o); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateOverride(date string, o models.DayOverride) error {
	field := "dateOverrides." + date
	if !isDate(date) {
		return invalid("dateOverrides", "date %q must be YYYY-MM-DD", date)
	}
	if len(o.Slots) > 0 && len(o.Blocks) > 0 {
		return invalid(field, "set either slots or blocks, not both")
	}
	for _, t := range o.Slots {
		if _, err := ParseTimeOfDay(t); err != nil {
			return invalid(field, "%v", err)
		}
	}
	for i, b := range o.Blocks {
		start, err := ParseTimeOfDay(b.Start)
		if err != nil {
			return invalid(field, "blocks[%d]: %v", i, err)
		}
		end, err := ParseTimeOfDay(b.End)
		if err != nil {
			return invalid(field, "blocks[%d]: %v", i, err)
		}
		if start >= end {
			return invalid(field, "blocks[%d]: start must be before end", i)
		}
	}
	return nil
}

func validateDay(name string, day models.DaySchedule) error {
	if !isWeekdayName(name) {
		return invalid("days", "unknown day %q", name)
	}
	field := "days." + name

	if day.Enabled && (day.Start == "" || day.End == "") {
		return invalid(field, "start and end are required when %s is enabled", name)
	}

	var start, end int
	var err error
	if day.Start != "" {
		if start, err = ParseTimeOfDay(day.Start); err != nil {
			return invalid(field, "%v", err)
		}
	}
	if day.End != "" {
		if end, err = ParseTimeOfDay(day.End); err != nil {
			return invalid(field, "%v", err)
		}
	}
	hasWindow := day.Start != "" && day.End != ""
	if hasWindow && start >= end {
		return invalid(field, "start must be before end on %s", name)
	}

	if (day.BreakStart == "") != (day.BreakEnd == "") {
		return invalid(field, "breakStart and breakEnd must be set together on %s", name)
	}
	if day.BreakStart == "" {
		return nil
	}
	bs, err := ParseTimeOfDay(day.BreakStart)
	if err != nil {
		return invalid(field, "%v", err)
	}
	be, err := ParseTimeOfDay(day.BreakEnd)
	if err != nil {
		return invalid(field, "%v", err)
	}
	if bs >= be {
		return invalid(field, "breakStart must be before breakEnd on %s", name)
	}
	if hasWindow && (bs < start || be > end) {
		return invalid(field, "break must lie within opening hours on %s", name)
	}
	return nil
}

func validateClosure(i int, c models.SpecialClosure) error {
	field := fmt.Sprintf("specialClosures[%d]", i)
	if !isDate(c.Date) {
		return invalid(field, "date %q must be YYYY-MM-DD", c.Date)
	}
	if c.EndDate == "" {
		return nil
	}
	if !isDate(c.EndDate) {
		return invalid(field, "endDate %q must be YYYY-MM-DD", c.EndDate)
	}
	if c.EndDate < c.Date {
		return invalid(field, "endDate must not be before date")
	}
	return nil
}

func isDate(s string) bool {
	_, err := ParseDate(s, time.UTC)
	return err == nil
}

func isWeekdayName(name string) bool {
	for _, n := range models.WeekdayNames {
		if n == name {
			return true
		}
	}
	return false
}
