package booking

import (
	"context"

	"urbanauto/models"
)

// IdentitySource exposes the active identity to the booking service without
// coupling it to the session store's full surface.
type IdentitySource interface {
	Current() *models.User
}

// Request carries the user-entered fields of a new booking.
type Request struct {
	ServiceID         string  `json:"serviceId"`
	ServiceName       string  `json:"serviceName"`
	VehicleType       string  `json:"vehicleType"`
	VehicleNumber     string  `json:"vehicleNumber,omitempty"`
	Address           string  `json:"address"`
	PreferredDateTime string  `json:"preferredDateTime"`
	Notes             string  `json:"notes,omitempty"`
	TotalAmount       float64 `json:"totalAmount,omitempty"`
}

// Service is the owner-scoped view of remote booking records with local
// cache coherence and confirm-then-reconcile mutation.
type Service interface {
	// Refresh replaces the whole cache from the remote store. No-op without
	// an identity. Safe to call repeatedly and concurrently.
	Refresh(ctx context.Context) error
	// Bookings returns the cached snapshot, newest created first.
	Bookings() []models.Booking
	// AddBooking persists a new Pending booking and reconciles the cache.
	AddBooking(ctx context.Context, req Request) (*models.Booking, error)
	// CancelBooking deletes the remote record then reconciles the cache.
	CancelBooking(ctx context.Context, id string) error
	// RescheduleBooking rewrites the preferred date/time fields only.
	RescheduleBooking(ctx context.Context, id, newDateTime string) error
	// Clear drops the cached snapshot, e.g. on logout.
	Clear()
}
