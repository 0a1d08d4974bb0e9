package booking

import (
	"context"
	"strings"
	"time"

	"urbanauto/models"
)

// Form carries the raw user-entered fields of the booking screen.
// Date is "2006-01-02" and Time is "15:04"; they stay separate here — the
// booking service derives the instant, not the form.
type Form struct {
	ServiceID     string `json:"serviceId"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	Address       string `json:"address"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes,omitempty"`
}

// FieldErrors maps a field name to its validation message. All violated
// fields are reported together, never fail-fast on the first.
type FieldErrors map[string]string

const formDateLayout = "2006-01-02"

// Validate checks every rule independently and returns the full set of
// violations. now anchors the not-before-today rule; dates compare by local
// calendar date, not by timestamp.
func (f *Form) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if f.ServiceID == "" {
		errs["service"] = "Please select a service"
	}
	if f.VehicleType == "" || !models.IsValidVehicleType(f.VehicleType) {
		errs["vehicleType"] = "Please select vehicle type"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	if f.Date == "" {
		errs["date"] = "Please select a date"
	} else if d, err := time.ParseInLocation(formDateLayout, f.Date, time.Local); err != nil {
		errs["date"] = "Please select a valid date"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if d.Before(today) {
			errs["date"] = "Date cannot be in the past"
		}
	}
	if f.Time == "" {
		errs["time"] = "Please select a time"
	}

	return errs
}

// Reset clears the form after a successful submission.
func (f *Form) Reset() {
	*f = Form{}
}

// FormController validates a candidate booking and delegates to the booking
// service on success.
type FormController struct {
	Bookings Service
}

// Submit validates the form and, when clean, assembles the booking request
// and creates it. Validation violations come back as field errors; service
// failures are surfaced verbatim. The form is cleared only on success.
func (c *FormController) Submit(ctx context.Context, form *Form) (FieldErrors, *models.Booking, error) {
	if errs := form.Validate(time.Now()); len(errs) > 0 {
		return errs, nil, nil
	}

	serviceName := ""
	if svc := models.GetServiceByID(form.ServiceID); svc != nil {
		serviceName = svc.Name
	}

	created, err := c.Bookings.AddBooking(ctx, Request{
		ServiceID:         form.ServiceID,
		ServiceName:       serviceName,
		VehicleType:       form.VehicleType,
		VehicleNumber:     form.VehicleNumber,
		Address:           form.Address,
		PreferredDateTime: form.Date + " " + form.Time,
		Notes:             form.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	form.Reset()
	return nil, created, nil
}
