package availability

import (
	"sort"
	"time"

	"vetbuddy/models"
)

// Generate returns the candidate slots of date under cfg, in ascending time order. A date
// override replaces the weekly pattern for that date. A disabled or unconfigured weekday
// yields an empty, non-nil slice.
func Generate(date time.Time, cfg models.AvailabilitySettings) []models.CandidateSlot {
	slots, _ := generate(date, cfg)
	return slots
}

// generate also reports which schedule governed date.
func generate(date time.Time, cfg models.AvailabilitySettings) ([]models.CandidateSlot, string) {
	if o, ok := cfg.OverrideFor(date.Format(DateLayout)); ok {
		return GenerateOverride(o, cfg.SlotDuration), models.ScheduleOverride
	}
	day, ok := cfg.Days[WeekdayName(date)]
	if !ok || !day.Enabled {
		return []models.CandidateSlot{}, models.ScheduleWeekly
	}
	return GenerateDay(day, cfg.SlotDuration), models.ScheduleWeekly
}

// GenerateOverride returns the slots of a date override. Explicit slot times are taken as
// given; otherwise each block is cut into cells of duration minutes. The result is sorted
// and free of duplicates.
func GenerateOverride(o models.DayOverride, duration int) []models.CandidateSlot {
	seen := map[string]bool{}
	var times []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			times = append(times, t)
		}
	}

	if len(o.Slots) > 0 {
		for _, t := range o.Slots {
			if _, err := ParseTimeOfDay(t); err == nil {
				add(t)
			}
		}
	} else {
		for _, b := range o.Blocks {
			block := models.DaySchedule{Enabled: true, Start: b.Start, End: b.End}
			for _, slot := range GenerateDay(block, duration) {
				add(slot.Time)
			}
		}
	}
	// zero-padded HH:MM sorts chronologically
	sort.Strings(times)

	slots := make([]models.CandidateSlot, 0, len(times))
	for _, t := range times {
		slots = append(slots, models.CandidateSlot{Time: t, Available: true})
	}
	return slots
}

// GenerateDay steps through the day's window in fixed cells of duration minutes. A cell is
// kept when it ends by the closing time and does not overlap the break.
func GenerateDay(day models.DaySchedule, duration int) []models.CandidateSlot {
	slots := []models.CandidateSlot{}
	if !day.Enabled || duration <= 0 {
		return slots
	}
	start, err := ParseTimeOfDay(day.Start)
	if err != nil {
		return slots
	}
	end, err := ParseTimeOfDay(day.End)
	if err != nil {
		return slots
	}
	breakStart, breakEnd, hasBreak := breakWindow(day)

	for step := start; step+duration <= end; step += duration {
		slotEnd := step + duration
		if hasBreak && !(slotEnd <= breakStart || step >= breakEnd) {
			continue
		}
		slots = append(slots, models.CandidateSlot{Time: FormatTimeOfDay(step), Available: true})
	}
	return slots
}

// breakWindow reports the break in minutes; a missing, malformed or empty break disables it.
func breakWindow(day models.DaySchedule) (int, int, bool) {
	if day.BreakStart == "" || day.BreakEnd == "" {
		return 0, 0, false
	}
	bs, err := ParseTimeOfDay(day.BreakStart)
	if err != nil {
		return 0, 0, false
	}
	be, err := ParseTimeOfDay(day.BreakEnd)
	if err != nil || bs >= be {
		return 0, 0, false
	}
	return bs, be, true
}

func containsSlot(slots []models.CandidateSlot, t string) bool {
	for _, s := range slots {
		if s.Time == t {
			return true
		}
	}
	return false
}
