package handlers

import (
	clinicRepo "vetbuddy/database/repository/clinic"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the endpoint handlers and what the auth middleware needs.
type HandlerBundle struct {
	ClinicRepo clinicRepo.ClinicRepository
	AuthCache  *redis.Client

	Availability *AvailabilityHandler
	Booking      *BookingHandler
}
