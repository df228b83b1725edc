package models

import "time"

// Weekday names as stored in the days map of a clinic schedule.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// WeekdayNames is indexed by time.Weekday.
var WeekdayNames = [7]string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DaySchedule is the opening window of one weekday. Times are "HH:MM"; an empty string means unset.
type DaySchedule struct {
	Enabled    bool   `bson:"enabled" json:"enabled"`
	Start      string `bson:"start,omitempty" json:"start,omitempty"`
	End        string `bson:"end,omitempty" json:"end,omitempty"`
	BreakStart string `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd   string `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
}

// SpecialClosure closes a single date, or the inclusive range Date..EndDate when EndDate is set.
type SpecialClosure struct {
	Date    string `bson:"date" json:"date"`
	EndDate string `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Reason  string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Covers reports whether the closure includes the given YYYY-MM-DD date.
func (c SpecialClosure) Covers(date string) bool {
	if c.EndDate == "" {
		return c.Date == date
	}
	return date >= c.Date && date <= c.EndDate
}

// BlockedSlot takes one grid cell out of availability without closing the day.
type BlockedSlot struct {
	Date   string `bson:"date" json:"date"`
	Time   string `bson:"time" json:"time"`
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// TimeBlock is one opening window of a date override.
type TimeBlock struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DayOverride replaces the weekly pattern on one date, either with an explicit list of
// slot times or with opening blocks cut at the clinic's slot duration. An override with
// neither leaves the date without slots.
type DayOverride struct {
	Slots  []string    `bson:"slots,omitempty" json:"slots,omitempty"`
	Blocks []TimeBlock `bson:"blocks,omitempty" json:"blocks,omitempty"`
}

// WorkingHoursConfig is the availability document embedded in a clinic.
// Pointer fields distinguish "never configured" from an explicit zero value.
type WorkingHoursConfig struct {
	Days                   map[string]DaySchedule `bson:"days,omitempty" json:"days,omitempty"`
	SlotDuration           int                    `bson:"slotDuration,omitempty" json:"slotDuration,omitempty"`
	AcceptOnlineBooking    *bool                  `bson:"acceptOnlineBooking,omitempty" json:"acceptOnlineBooking,omitempty"`
	RequireConfirmation    *bool                  `bson:"requireConfirmation,omitempty" json:"requireConfirmation,omitempty"`
	MaxAdvanceBookingDays  *int                   `bson:"maxAdvanceBookingDays,omitempty" json:"maxAdvanceBookingDays,omitempty"`
	MinAdvanceBookingHours *int                   `bson:"minAdvanceBookingHours,omitempty" json:"minAdvanceBookingHours,omitempty"`
	SpecialClosures        []SpecialClosure       `bson:"specialClosures,omitempty" json:"specialClosures,omitempty"`
	BlockedSlots           []BlockedSlot          `bson:"blockedSlots,omitempty" json:"blockedSlots,omitempty"`
	DateOverrides          map[string]DayOverride `bson:"dateOverrides,omitempty" json:"dateOverrides,omitempty"`
	UpdatedAt              *time.Time             `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AvailabilitySettings is the fully resolved view of a clinic's configuration, defaults applied.
type AvailabilitySettings struct {
	Days                   map[string]DaySchedule `json:"days"`
	SlotDuration           int                    `json:"slotDuration"`
	AcceptOnlineBooking    bool                   `json:"acceptOnlineBooking"`
	RequireConfirmation    bool                   `json:"requireConfirmation"`
	MaxAdvanceBookingDays  int                    `json:"maxAdvanceBookingDays"`
	MinAdvanceBookingHours int                    `json:"minAdvanceBookingHours"`
	SpecialClosures        []SpecialClosure       `json:"specialClosures"`
	BlockedSlots           []BlockedSlot          `json:"blockedSlots"`
	DateOverrides          map[string]DayOverride `json:"dateOverrides"`
	UpdatedAt              *time.Time             `json:"updatedAt,omitempty"`
}

// ClosureFor returns the closure covering date, if any.
func (s AvailabilitySettings) ClosureFor(date string) (SpecialClosure, bool) {
	for _, c := range s.SpecialClosures {
		if c.Covers(date) {
			return c, true
		}
	}
	return SpecialClosure{}, false
}

// OverrideFor returns the override governing date, if any.
func (s AvailabilitySettings) OverrideFor(date string) (DayOverride, bool) {
	o, ok := s.DateOverrides[date]
	return o, ok
}

// AvailabilityUpdate is a partial settings update. Nil fields are left untouched.
type AvailabilityUpdate struct {
	Days                   map[string]DaySchedule  `json:"days"`
	SlotDuration           *int                    `json:"slotDuration"`
	AcceptOnlineBooking    *bool                   `json:"acceptOnlineBooking"`
	RequireConfirmation    *bool                   `json:"requireConfirmation"`
	MaxAdvanceBookingDays  *int                    `json:"maxAdvanceBookingDays"`
	MinAdvanceBookingHours *int                    `json:"minAdvanceBookingHours"`
	SpecialClosures        *[]SpecialClosure       `json:"specialClosures"`
	BlockedSlots           *[]BlockedSlot          `json:"blockedSlots"`
	DateOverrides          *map[string]DayOverride `json:"dateOverrides"` // replaces the stored map; empty clears it
}

// IsEmpty reports whether the update carries no field at all.
func (u AvailabilityUpdate) IsEmpty() bool {
	return u.Days == nil && u.SlotDuration == nil && u.AcceptOnlineBooking == nil &&
		u.RequireConfirmation == nil && u.MaxAdvanceBookingDays == nil &&
		u.MinAdvanceBookingHours == nil && u.SpecialClosures == nil && u.BlockedSlots == nil &&
		u.DateOverrides == nil
}
