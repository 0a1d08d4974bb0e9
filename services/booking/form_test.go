package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanauto/models"
)

func validForm() Form {
	return Form{
		ServiceID:   "car-wash",
		VehicleType: "Sedan",
		Address:     "12 MG Road, Indiranagar",
		Date:        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:        "10:30",
	}
}

func TestValidateEmptyFormReportsEveryField(t *testing.T) {
	var f Form
	errs := f.Validate(time.Now())

	assert.Len(t, errs, 5)
	assert.Equal(t, "Please select a service", errs["service"])
	assert.Equal(t, "Please select vehicle type", errs["vehicleType"])
	assert.Equal(t, "Address is required", errs["address"])
	assert.Equal(t, "Please select a date", errs["date"])
	assert.Equal(t, "Please select a time", errs["time"])
}

func TestValidateAggregatesMultipleViolations(t *testing.T) {
	f := validForm()
	f.VehicleType = "Truck"
	f.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	errs := f.Validate(time.Now())
	assert.Len(t, errs, 2)
	assert.Equal(t, "Please select vehicle type", errs["vehicleType"])
	assert.Equal(t, "Date cannot be in the past", errs["date"])
}

func TestValidateAcceptsToday(t *testing.T) {
	f := validForm()
	f.Date = time.Now().Format("2006-01-02")
	assert.Empty(t, f.Validate(time.Now()))
}

func TestValidateRejectsWhitespaceAddress(t *testing.T) {
	f := validForm()
	f.Address = "   "
	errs := f.Validate(time.Now())
	assert.Equal(t, "Address is required", errs["address"])
}

func TestValidateRejectsMalformedDate(t *testing.T) {
	f := validForm()
	f.Date = "next tuesday"
	errs := f.Validate(time.Now())
	assert.Equal(t, "Please select a valid date", errs["date"])
}

// recordingService captures the request AddBooking receives.
type recordingService struct {
	lastReq Request
	created *models.Booking
	err     error
}

func (r *recordingService) Refresh(ctx context.Context) error { return nil }
func (r *recordingService) Bookings() []models.Booking        { return nil }
func (r *recordingService) AddBooking(ctx context.Context, req Request) (*models.Booking, error) {
	r.lastReq = req
	return r.created, r.err
}
func (r *recordingService) CancelBooking(ctx context.Context, id string) error { return nil }
func (r *recordingService) RescheduleBooking(ctx context.Context, id, newDateTime string) error {
	return nil
}
func (r *recordingService) Clear() {}

func TestSubmitDoesNotReachServiceOnValidationFailure(t *testing.T) {
	svc := &recordingService{}
	ctrl := &FormController{Bookings: svc}

	f := Form{VehicleType: "Sedan"}
	errs, created, err := ctrl.Submit(context.Background(), &f)

	require.NoError(t, err)
	assert.Nil(t, created)
	assert.NotEmpty(t, errs)
	assert.Empty(t, svc.lastReq.ServiceID)
}

func TestSubmitAssemblesDateTimeAndResolvesServiceName(t *testing.T) {
	svc := &recordingService{created: &models.Booking{ID: "b-1"}}
	ctrl := &FormController{Bookings: svc}

	f := validForm()
	date, clock := f.Date, f.Time
	errs, created, err := ctrl.Submit(context.Background(), &f)

	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, created)

	assert.Equal(t, date+" "+clock, svc.lastReq.PreferredDateTime)
	assert.Equal(t, "Car Wash", svc.lastReq.ServiceName)
	assert.Equal(t, Form{}, f, "form should be cleared after a successful submission")
}

func TestSubmitKeepsFormOnServiceFailure(t *testing.T) {
	svc := &recordingService{err: errProvider("failed to create booking", nil)}
	ctrl := &FormController{Bookings: svc}

	f := validForm()
	snapshot := f
	errs, created, err := ctrl.Submit(context.Background(), &f)

	require.Error(t, err)
	assert.Empty(t, errs)
	assert.Nil(t, created)
	assert.Equal(t, snapshot, f, "form should keep its fields when the service fails")
}
