package availability

import (
	"context"
	"time"

	"vetbuddy/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockClinicRepo struct {
	mock.Mock
}

func (m *MockClinicRepo) GetByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if c := args.Get(0); c != nil {
		return c.(*models.Clinic), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClinicRepo) GetByIDWithProjection(ctx context.Context, clinicID string, projection bson.M) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID, projection)
	if c := args.Get(0); c != nil {
		return c.(*models.Clinic), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClinicRepo) UpdateAvailability(ctx context.Context, clinicID string, fields bson.M) error {
	return m.Called(ctx, clinicID, fields).Error(0)
}

func (m *MockClinicRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) GetByClinicAndDate(ctx context.Context, clinicID, date string, excludeStatuses []string) ([]models.Booking, error) {
	args := m.Called(ctx, clinicID, date, excludeStatuses)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetPopularTimes(ctx context.Context, clinicID string) ([]models.TimePopularity, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]models.TimePopularity), args.Error(1)
}

func (m *MockBookingRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

// Monday 3 March 2025, 08:00 UTC.
var testNow = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

func newTestService(now time.Time) (*DefaultAvailabilityService, *MockClinicRepo, *MockBookingRepo) {
	clinics := new(MockClinicRepo)
	bookings := new(MockBookingRepo)
	svc := &DefaultAvailabilityService{
		Clinics:  clinics,
		Bookings: bookings,
		Location: time.UTC,
		Now:      func() time.Time { return now },
	}
	return svc, clinics, bookings
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
