package bookingRepo

import (
	"context"
	"errors"
	"time"

	"urbanauto/models"
)

// ErrNotFound is returned when a booking matching both id and owner does not
// exist in the store. The store, not the caller, is the authority on
// ownership: every mutating call carries the owner id in its filter.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines remote data access for booking records.
type BookingRepository interface {
	// Insert persists a new booking and returns the canonical stored record.
	Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	// Delete removes a booking matching both id and owner. Returns ErrNotFound
	// when no such record exists.
	Delete(ctx context.Context, id, userID string) error
	// ListByUser returns every booking owned by userID, newest created first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// GetByID retrieves a booking by id. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateSchedule rewrites the preferred date/time fields of an owned
	// booking and returns the canonical updated record.
	UpdateSchedule(ctx context.Context, id, userID, preferredDateTime string, bookingDate time.Time) (*models.Booking, error)
}
