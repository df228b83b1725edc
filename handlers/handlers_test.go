package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetbuddy/handlers"
	"vetbuddy/models"
	"vetbuddy/services/availability"
	"vetbuddy/services/booking"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) Resolve(ctx context.Context, clinicID, date, serviceID string) (*models.DaySlots, error) {
	args := m.Called(ctx, clinicID, date, serviceID)
	if v := args.Get(0); v != nil {
		return v.(*models.DaySlots), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAvailabilityService) Validate(ctx context.Context, clinicID, date, timeOfDay string) (*models.PolicyDecision, error) {
	args := m.Called(ctx, clinicID, date, timeOfDay)
	if v := args.Get(0); v != nil {
		return v.(*models.PolicyDecision), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAvailabilityService) Evaluate(clinic *models.Clinic, date, timeOfDay string) (*models.PolicyDecision, error) {
	args := m.Called(clinic, date, timeOfDay)
	if v := args.Get(0); v != nil {
		return v.(*models.PolicyDecision), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAvailabilityService) Suggest(ctx context.Context, clinicID, date string) (*models.SlotSuggestions, error) {
	args := m.Called(ctx, clinicID, date)
	if v := args.Get(0); v != nil {
		return v.(*models.SlotSuggestions), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAvailabilityService) GetSettings(ctx context.Context, clinicID string) (*models.AvailabilitySettings, error) {
	args := m.Called(ctx, clinicID)
	if v := args.Get(0); v != nil {
		return v.(*models.AvailabilitySettings), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAvailabilityService) UpdateSettings(ctx context.Context, clinicID string, update models.AvailabilityUpdate) (*models.AvailabilitySettings, error) {
	args := m.Called(ctx, clinicID, update)
	if v := args.Get(0); v != nil {
		return v.(*models.AvailabilitySettings), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) RequestBooking(ctx context.Context, clinicID, ownerID string, input models.BookingRequestInput) (*models.Booking, error) {
	args := m.Called(ctx, clinicID, ownerID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func withIdentity(key, id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != "" {
			c.Set(key, id)
		}
		c.Next()
	}
}

func newRouter(avail *MockAvailabilityService, book *MockBookingService, clinicID, ownerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ah := &handlers.AvailabilityHandler{Service: avail}
	bh := &handlers.BookingHandler{Service: book}

	r.GET("/api/clinics/:clinicID/slots", ah.GetSlotsHandler)
	r.GET("/api/clinics/:clinicID/slots/validate", ah.ValidateSlotHandler)
	r.GET("/api/clinics/:clinicID/slots/suggest", ah.SuggestSlotsHandler)
	r.POST("/api/clinics/:clinicID/bookings", withIdentity("ownerID", ownerID), bh.RequestBookingHandler)
	r.GET("/api/clinic/availability", withIdentity("clinicID", clinicID), ah.GetAvailabilitySettingsHandler)
	r.PUT("/api/clinic/availability", withIdentity("clinicID", clinicID), ah.UpdateAvailabilitySettingsHandler)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetSlotsHandler(t *testing.T) {
	t.Run("returns the day grid", func(t *testing.T) {
		avail := new(MockAvailabilityService)
		avail.On("Resolve", mock.Anything, "c1", "2025-03-10", "vax").Return(&models.DaySlots{
			ClinicID: "c1", Date: "2025-03-10", TotalSlots: 2,
			Slots: []models.CandidateSlot{{Time: "09:00", Available: true}, {Time: "09:30", Available: true}},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/clinics/c1/slots?date=2025-03-10&serviceId=vax", nil)
		newRouter(avail, nil, "", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var day models.DaySlots
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
		assert.Len(t, day.Slots, 2)
		avail.AssertExpectations(t)
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad date", &availability.ValidationError{Field: "date", Message: "date is required"}, http.StatusBadRequest, "invalid"},
		{"unknown clinic", &availability.NotFoundError{Resource: "clinic", ID: "c1"}, http.StatusNotFound, "not-found"},
		{"store failure", errors.New("mongo timeout"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			avail := new(MockAvailabilityService)
			avail.On("Resolve", mock.Anything, "c1", "", "").Return(nil, tc.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/clinics/c1/slots", nil)
			newRouter(avail, nil, "", "").ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tc.code, body.Code)
			assert.NotContains(t, body.Error, "mongo")
		})
	}
}

func TestValidateSlotHandler(t *testing.T) {
	avail := new(MockAvailabilityService)
	avail.On("Validate", mock.Anything, "c1", "2025-03-08", "10:00").
		Return(&models.PolicyDecision{Allowed: false, Reason: availability.ReasonDayClosed, Message: "closed"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clinics/c1/slots/validate?date=2025-03-08&time=10:00", nil)
	newRouter(avail, nil, "", "").ServeHTTP(w, req)

	// a negative decision is still a successful answer
	assert.Equal(t, http.StatusOK, w.Code)
	var decision models.PolicyDecision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
	assert.False(t, decision.Allowed)
	assert.Equal(t, availability.ReasonDayClosed, decision.Reason)
}

func TestSuggestSlotsHandler(t *testing.T) {
	avail := new(MockAvailabilityService)
	avail.On("Suggest", mock.Anything, "c1", "2025-03-10").
		Return(&models.SlotSuggestions{ClinicID: "c1", Date: "2025-03-10"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clinics/c1/slots/suggest?date=2025-03-10", nil)
	newRouter(avail, nil, "", "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	avail.AssertExpectations(t)
}

func TestRequestBookingHandler(t *testing.T) {
	input := models.BookingRequestInput{Date: "2025-03-04", Time: "10:00", PetID: "p1"}
	body, _ := json.Marshal(input)

	t.Run("created", func(t *testing.T) {
		book := new(MockBookingService)
		book.On("RequestBooking", mock.Anything, "c1", "o1", input).
			Return(&models.Booking{ID: "b1", Status: models.StatusPending}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/clinics/c1/bookings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newRouter(nil, book, "", "o1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		book.AssertExpectations(t)
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"slot taken", booking.ErrSlotTaken, http.StatusConflict, "slot-taken"},
		{"policy", &availability.PolicyRejection{Reason: availability.ReasonTooSoon, Message: "too soon"}, http.StatusUnprocessableEntity, availability.ReasonTooSoon},
		{"unknown clinic", &availability.NotFoundError{Resource: "clinic", ID: "c1"}, http.StatusNotFound, "not-found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			book := new(MockBookingService)
			book.On("RequestBooking", mock.Anything, "c1", "o1", input).Return(nil, tc.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/clinics/c1/bookings", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(nil, book, "", "o1").ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w).Code)
		})
	}

	t.Run("missing time", func(t *testing.T) {
		book := new(MockBookingService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/clinics/c1/bookings", bytes.NewBufferString(`{"date":"2025-03-04"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(nil, book, "", "o1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		book.AssertNotCalled(t, "RequestBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no owner identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/clinics/c1/bookings", bytes.NewReader(body))
		newRouter(nil, new(MockBookingService), "", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAvailabilitySettingsHandlers(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		avail := new(MockAvailabilityService)
		avail.On("GetSettings", mock.Anything, "c1").Return(&models.AvailabilitySettings{SlotDuration: 30}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/clinic/availability", nil)
		newRouter(avail, nil, "c1", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var settings models.AvailabilitySettings
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
		assert.Equal(t, 30, settings.SlotDuration)
	})

	t.Run("partial update", func(t *testing.T) {
		avail := new(MockAvailabilityService)
		avail.On("UpdateSettings", mock.Anything, "c1", mock.MatchedBy(func(u models.AvailabilityUpdate) bool {
			return u.SlotDuration != nil && *u.SlotDuration == 20 && u.Days == nil && u.AcceptOnlineBooking == nil
		})).Return(&models.AvailabilitySettings{SlotDuration: 20}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/clinic/availability", bytes.NewBufferString(`{"slotDuration":20}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(avail, nil, "c1", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		avail.AssertExpectations(t)
	})

	t.Run("invalid update", func(t *testing.T) {
		avail := new(MockAvailabilityService)
		avail.On("UpdateSettings", mock.Anything, "c1", mock.Anything).
			Return(nil, &availability.ValidationError{Field: "slotDuration", Message: "must be between 10 and 120 minutes"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/clinic/availability", bytes.NewBufferString(`{"slotDuration":5}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(avail, nil, "c1", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "slotDuration")
	})

	t.Run("malformed json", func(t *testing.T) {
		avail := new(MockAvailabilityService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/clinic/availability", bytes.NewBufferString(`{"slotDuration":`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(avail, nil, "c1", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		avail.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/clinic/availability", nil)
		newRouter(new(MockAvailabilityService), nil, "", "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
