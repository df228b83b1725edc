// File: database/repository/clinic/crud.go
package clinicRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetbuddy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func clinicFilter(clinicID string) bson.M {
	return bson.M{"id": clinicID, "role": models.RoleClinic}
}

func (r *mongoClinicRepo) GetByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	return r.GetByIDWithProjection(ctx, clinicID, nil)
}

func (r *mongoClinicRepo) GetByIDWithProjection(ctx context.Context, clinicID string, projection bson.M) (*models.Clinic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var clinic models.Clinic
	err := r.coll.FindOne(ctx, clinicFilter(clinicID), opts).Decode(&clinic)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("error fetching clinic with id %s: %w", clinicID, err)
	}
	return &clinic, nil
}

// UpdateAvailability applies a $set of dotted availability fields. Fields absent from
// the map keep their stored values.
func (r *mongoClinicRepo) UpdateAvailability(ctx context.Context, clinicID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, clinicFilter(clinicID), bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrClinicNotFound
	}
	return nil
}
