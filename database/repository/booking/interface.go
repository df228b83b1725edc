// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"vetbuddy/database"
	"vetbuddy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when an active booking already holds the (clinic, date, time) cell.
var ErrSlotTaken = errors.New("slot already booked")

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByClinicAndDate(ctx context.Context, clinicID, date string, excludeStatuses []string) ([]models.Booking, error)
	GetPopularTimes(ctx context.Context, clinicID string) ([]models.TimePopularity, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("appointments"),
	}
}
