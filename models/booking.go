package models

import "time"

// BookingStatus is the lifecycle state of a booking. Transitions to
// Confirmed/Completed happen out of band on the server side and are only
// observed, never written, by the client-facing operations here.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
)

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// CanBeCancelled reports whether a customer may still cancel the booking.
func (s BookingStatus) CanBeCancelled() bool {
	return s == StatusPending
}

// Booking is a customer's request for a car-care service.
type Booking struct {
	ID                string        `json:"id" bson:"id"`
	UserID            string        `json:"userId" bson:"user_id"`
	ServiceID         string        `json:"serviceId" bson:"service_id"`
	ServiceName       string        `json:"serviceName" bson:"service_name"`
	VehicleType       string        `json:"vehicleType" bson:"vehicle_type"`
	VehicleNumber     string        `json:"vehicleNumber,omitempty" bson:"vehicle_number,omitempty"`
	Address           string        `json:"address" bson:"address"`
	PreferredDateTime string        `json:"preferredDateTime" bson:"preferred_date_time"`
	BookingDate       time.Time     `json:"bookingDate" bson:"booking_date"`
	Notes             string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Status            BookingStatus `json:"status" bson:"status"`
	TotalAmount       float64       `json:"totalAmount" bson:"total_amount"`
	CreatedAt         time.Time     `json:"createdAt" bson:"created_at"`
}

// VehicleTypes is the fixed set of vehicle types a booking may carry.
var VehicleTypes = []string{"Hatchback", "Sedan", "SUV", "MUV", "Luxury"}

// IsValidVehicleType reports whether t is one of the allowed vehicle types.
func IsValidVehicleType(t string) bool {
	for _, v := range VehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}
