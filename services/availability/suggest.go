package availability

import (
	"context"
	"math"
	"sort"

	"vetbuddy/models"
)

const (
	suggestedCount = 3
	popularCount   = 5
)

// Suggest ranks the free slots of a day by how often completed bookings used each time.
// Times never booked before keep their grid order after the ranked ones. An empty date
// means today in clinic time.
func (s *DefaultAvailabilityService) Suggest(ctx context.Context, clinicID, date string) (*models.SlotSuggestions, error) {
	if date == "" {
		date = s.now().Format(DateLayout)
	}
	day, err := s.Resolve(ctx, clinicID, date, "")
	if err != nil {
		return nil, err
	}
	history, err := s.Bookings.GetPopularTimes(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	rank := make(map[string]int, len(history))
	popular := make(map[string]bool)
	for i, h := range history {
		rank[h.Time] = i
		if i < popularCount {
			popular[h.Time] = true
		}
	}
	rankOf := func(t string) int {
		if r, ok := rank[t]; ok {
			return r
		}
		return len(history)
	}

	var free []string
	booked := []string{}
	for _, slot := range day.Slots {
		if slot.Available {
			free = append(free, slot.Time)
		}
		if slot.Booked {
			booked = append(booked, slot.Time)
		}
	}
	sort.SliceStable(free, func(i, j int) bool { return rankOf(free[i]) < rankOf(free[j]) })

	suggestions := make([]models.SuggestedSlot, 0, len(free))
	for i, t := range free {
		suggestions = append(suggestions, models.SuggestedSlot{
			Time:        t,
			Period:      periodOf(t),
			IsPopular:   popular[t],
			IsSuggested: i < suggestedCount,
		})
	}

	stats := models.SlotStats{
		Total:     day.TotalSlots,
		Booked:    day.BookedCount,
		Available: day.AvailableCount,
	}
	if stats.Total > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.Booked) * 100 / float64(stats.Total)))
	}

	return &models.SlotSuggestions{
		ClinicID:       clinicID,
		Date:           date,
		AvailableSlots: suggestions,
		BookedSlots:    booked,
		Stats:          stats,
	}, nil
}

func periodOf(t string) string {
	if m, err := ParseTimeOfDay(t); err == nil && m < 12*60 {
		return "morning"
	}
	return "afternoon"
}
