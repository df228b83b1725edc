package models

import "time"

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
	StatusRejected  = "rejected"
)

// InactiveStatuses never occupy a slot.
var InactiveStatuses = []string{StatusCancelled, StatusRejected}

// ActiveStatuses are the statuses the slot uniqueness index covers. Any status outside
// InactiveStatuses still occupies its slot on the read side.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow}

// Booking is an appointment at a clinic for a date and grid time.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	ClinicID  string    `bson:"clinicId" json:"clinicId"`
	OwnerID   string    `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	PetID     string    `bson:"petId,omitempty" json:"petId,omitempty"`
	ServiceID string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time      string    `bson:"time" json:"time"` // HH:MM
	Duration  int       `bson:"duration,omitempty" json:"duration,omitempty"`
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookingRequestInput is the payload of an online booking request.
type BookingRequestInput struct {
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	ServiceID string `json:"serviceId"`
	PetID     string `json:"petId"`
	Notes     string `json:"notes"`
}

// TimePopularity counts completed bookings per grid time.
type TimePopularity struct {
	Time  string `bson:"_id" json:"time"`
	Count int    `bson:"count" json:"count"`
}
