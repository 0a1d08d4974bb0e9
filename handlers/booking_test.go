package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanauto/models"
	"urbanauto/services/booking"
)

type stubBookingService struct {
	bookings []models.Booking
	created  *models.Booking
	err      error
}

func (s *stubBookingService) Refresh(ctx context.Context) error { return s.err }
func (s *stubBookingService) Bookings() []models.Booking        { return s.bookings }
func (s *stubBookingService) AddBooking(ctx context.Context, req booking.Request) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}
func (s *stubBookingService) CancelBooking(ctx context.Context, id string) error { return s.err }
func (s *stubBookingService) RescheduleBooking(ctx context.Context, id, newDateTime string) error {
	return s.err
}
func (s *stubBookingService) Clear() {}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	switch method {
	case http.MethodGet:
		router.GET(path, handler)
	case http.MethodPost:
		router.POST(path, handler)
	case http.MethodDelete:
		router.DELETE(path, handler)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingReturnsFieldErrors(t *testing.T) {
	ctrl := &booking.FormController{Bookings: &stubBookingService{}}
	handler := CreateBookingHandler(ctrl)

	w := performJSON(t, handler, http.MethodPost, "/api/bookings", booking.Form{VehicleType: "Sedan"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "service")
	assert.Contains(t, resp.Errors, "address")
	assert.Contains(t, resp.Errors, "date")
	assert.Contains(t, resp.Errors, "time")
	assert.NotContains(t, resp.Errors, "vehicleType")
}

func TestCreateBookingReturnsCanonicalRecord(t *testing.T) {
	created := &models.Booking{ID: "b-1", ServiceName: "Car Wash", Status: models.StatusPending}
	ctrl := &booking.FormController{Bookings: &stubBookingService{created: created}}
	handler := CreateBookingHandler(ctrl)

	form := booking.Form{
		ServiceID:   "car-wash",
		VehicleType: "Sedan",
		Address:     "12 MG Road",
		Date:        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:        "10:30",
	}
	w := performJSON(t, handler, http.MethodPost, "/api/bookings", form)
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b-1", got.ID)
}

func TestCancelBookingMapsNotLoggedInTo401(t *testing.T) {
	svc := &stubBookingService{err: &booking.Error{Code: booking.CodeNotLoggedIn, Message: "you must be logged in to manage bookings"}}
	handler := CancelBookingHandler(svc)

	w := performJSON(t, handler, http.MethodDelete, "/api/bookings/b-1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCancelBookingMapsProviderFailureTo502(t *testing.T) {
	svc := &stubBookingService{err: &booking.Error{Code: booking.CodeProvider, Message: "failed to cancel booking", Err: fmt.Errorf("store down")}}
	handler := CancelBookingHandler(svc)

	w := performJSON(t, handler, http.MethodDelete, "/api/bookings/b-1", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListBookingsReturnsSnapshot(t *testing.T) {
	svc := &stubBookingService{bookings: []models.Booking{{ID: "b-2"}, {ID: "b-1"}}}
	handler := ListBookingsHandler(svc)

	w := performJSON(t, handler, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b-2", resp.Bookings[0].ID)
}
