// File: database/repository/clinic/interface.go
package clinicRepo

import (
	"context"
	"errors"

	"vetbuddy/database"
	"vetbuddy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrClinicNotFound is returned when no clinic profile matches the ID.
var ErrClinicNotFound = errors.New("clinic not found")

type ClinicRepository interface {
	GetByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	GetByIDWithProjection(ctx context.Context, clinicID string, projection bson.M) (*models.Clinic, error)
	UpdateAvailability(ctx context.Context, clinicID string, fields bson.M) error
	EnsureIndexes() error
}

type mongoClinicRepo struct {
	coll *mongo.Collection
}

// NewMongoClinicRepo constructs a ClinicRepository over the users collection,
// where clinics are stored as users with role "clinic".
func NewMongoClinicRepo() ClinicRepository {
	return &mongoClinicRepo{
		coll: database.DB().Collection("users"),
	}
}
