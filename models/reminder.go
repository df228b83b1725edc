package models

// ReminderPayload is the asynq task body of an appointment reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	ClinicID  string `json:"clinicId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
