package availability

import (
	"context"
	"errors"
	"time"

	bookingRepo "vetbuddy/database/repository/booking"
	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/models"
)

// AvailabilityService computes bookable slots, checks booking policy and manages
// a clinic's availability settings.
type AvailabilityService interface {
	Resolve(ctx context.Context, clinicID, date, serviceID string) (*models.DaySlots, error)
	Validate(ctx context.Context, clinicID, date, timeOfDay string) (*models.PolicyDecision, error)
	Evaluate(clinic *models.Clinic, date, timeOfDay string) (*models.PolicyDecision, error)
	Suggest(ctx context.Context, clinicID, date string) (*models.SlotSuggestions, error)
	GetSettings(ctx context.Context, clinicID string) (*models.AvailabilitySettings, error)
	UpdateSettings(ctx context.Context, clinicID string, update models.AvailabilityUpdate) (*models.AvailabilitySettings, error)
}

// DefaultAvailabilityService implements AvailabilityService over the clinic and booking stores.
type DefaultAvailabilityService struct {
	Clinics  clinicRepo.ClinicRepository
	Bookings bookingRepo.BookingRepository
	// Location is the clinic-local time zone; nil means UTC.
	Location *time.Location
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now == nil {
		return time.Now().In(s.location())
	}
	return s.Now().In(s.location())
}

func (s *DefaultAvailabilityService) loadClinic(ctx context.Context, clinicID string) (*models.Clinic, error) {
	if clinicID == "" {
		return nil, invalid("clinicId", "is required")
	}
	clinic, err := s.Clinics.GetByID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, clinicRepo.ErrClinicNotFound) {
			return nil, &NotFoundError{Resource: "clinic", ID: clinicID}
		}
		return nil, err
	}
	return clinic, nil
}
