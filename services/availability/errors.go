package availability

import (
	"fmt"

	"vetbuddy/models"
)

// Policy rejection reason codes.
const (
	ReasonClosure               = "closure"
	ReasonTooFarAdvance         = "too-far-advance"
	ReasonTooSoon               = "too-soon"
	ReasonDayClosed             = "day-closed"
	ReasonMisalignedTime        = "misaligned-time"
	ReasonSlotBlocked           = "slot-blocked"
	ReasonOnlineBookingDisabled = "online-booking-disabled"
)

// ValidationError is malformed caller input. It is reported as is and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing clinic.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// PolicyRejection is a business rule refusing a booking request.
type PolicyRejection struct {
	Reason  string
	Message string
}

func (e *PolicyRejection) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// RejectionFromDecision turns a negative decision into an error; it returns nil when allowed.
func RejectionFromDecision(d *models.PolicyDecision) error {
	if d == nil || d.Allowed {
		return nil
	}
	return &PolicyRejection{Reason: d.Reason, Message: d.Message}
}
