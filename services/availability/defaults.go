package availability

import "vetbuddy/models"

// Default policy values applied when a clinic never configured them.
const (
	DefaultSlotDuration           = 30
	DefaultMaxAdvanceBookingDays  = 60
	DefaultMinAdvanceBookingHours = 2
	MinSlotDuration               = 10
	MaxSlotDuration               = 120
)

// DefaultDays returns a fresh copy of the fallback weekly schedule:
// Monday to Friday 09:00-18:00 with a 13:00-14:00 break, weekends closed.
func DefaultDays() map[string]models.DaySchedule {
	open := models.DaySchedule{Enabled: true, Start: "09:00", End: "18:00", BreakStart: "13:00", BreakEnd: "14:00"}
	return map[string]models.DaySchedule{
		models.Monday:    open,
		models.Tuesday:   open,
		models.Wednesday: open,
		models.Thursday:  open,
		models.Friday:    open,
		models.Saturday:  {Enabled: false},
		models.Sunday:    {Enabled: false},
	}
}

// MergeDefaults resolves a stored config against the defaults. Stored days override the
// default for that weekday only. The input is not modified.
func MergeDefaults(cfg models.WorkingHoursConfig) models.AvailabilitySettings {
	days := DefaultDays()
	for name, day := range cfg.Days {
		days[name] = day
	}

	s := models.AvailabilitySettings{
		Days:                   days,
		SlotDuration:           DefaultSlotDuration,
		AcceptOnlineBooking:    true,
		RequireConfirmation:    true,
		MaxAdvanceBookingDays:  DefaultMaxAdvanceBookingDays,
		MinAdvanceBookingHours: DefaultMinAdvanceBookingHours,
		SpecialClosures:        append([]models.SpecialClosure{}, cfg.SpecialClosures...),
		BlockedSlots:           append([]models.BlockedSlot{}, cfg.BlockedSlots...),
		DateOverrides:          make(map[string]models.DayOverride, len(cfg.DateOverrides)),
		UpdatedAt:              cfg.UpdatedAt,
	}
	for date, o := range cfg.DateOverrides {
		s.DateOverrides[date] = o
	}
	if cfg.SlotDuration > 0 {
		s.SlotDuration = cfg.SlotDuration
	}
	if cfg.AcceptOnlineBooking != nil {
		s.AcceptOnlineBooking = *cfg.AcceptOnlineBooking
	}
	if cfg.RequireConfirmation != nil {
		s.RequireConfirmation = *cfg.RequireConfirmation
	}
	if cfg.MaxAdvanceBookingDays != nil {
		s.MaxAdvanceBookingDays = *cfg.MaxAdvanceBookingDays
	}
	if cfg.MinAdvanceBookingHours != nil {
		s.MinAdvanceBookingHours = *cfg.MinAdvanceBookingHours
	}
	return s
}
