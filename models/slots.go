package models

// CandidateSlot is one grid cell of a day.
type CandidateSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked,omitempty"`
	Blocked   bool   `json:"blocked,omitempty"`
}

// Schedule sources of a resolved day.
const (
	ScheduleWeekly   = "weekly"
	ScheduleOverride = "override"
)

// DaySlots is the resolved availability of a clinic for one date.
type DaySlots struct {
	ClinicID            string          `json:"clinicId"`
	ClinicName          string          `json:"clinicName"`
	Date                string          `json:"date"`
	DayName             string          `json:"dayName"`
	DayEnabled          bool            `json:"dayEnabled"`
	Blocked             bool            `json:"blocked,omitempty"`
	BlockReason         string          `json:"blockReason,omitempty"`
	ScheduleSource      string          `json:"scheduleSource"`
	WorkingHours        DaySchedule     `json:"workingHours"`
	Override            *DayOverride    `json:"override,omitempty"`
	SlotDuration        int             `json:"slotDuration"`
	ServiceDuration     int             `json:"serviceDuration"`
	Slots               []CandidateSlot `json:"slots"`
	TotalSlots          int             `json:"totalSlots"`
	BookedCount         int             `json:"bookedCount"`
	AvailableCount      int             `json:"availableCount"`
	AcceptOnlineBooking bool            `json:"acceptOnlineBooking"`
	RequireConfirmation bool            `json:"requireConfirmation"`
}

// PolicyDecision is the outcome of validating a requested date and time.
type PolicyDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// SuggestedSlot is a free slot ranked by historical demand.
type SuggestedSlot struct {
	Time        string `json:"time"`
	Period      string `json:"period"`
	IsPopular   bool   `json:"isPopular"`
	IsSuggested bool   `json:"isSuggested"`
}

// SlotStats summarises occupancy of a day.
type SlotStats struct {
	Total         int `json:"total"`
	Booked        int `json:"booked"`
	Available     int `json:"available"`
	OccupancyRate int `json:"occupancyRate"`
}

// SlotSuggestions is the response of the suggestion endpoint.
type SlotSuggestions struct {
	ClinicID       string          `json:"clinicId"`
	Date           string          `json:"date"`
	AvailableSlots []SuggestedSlot `json:"availableSlots"`
	BookedSlots    []string        `json:"bookedSlots"`
	Stats          SlotStats       `json:"stats"`
}
