package location

import (
	"context"

	"urbanauto/models"
)

// PositionSource is the device geolocation surface the sampler consumes.
type PositionSource interface {
	// RequestPermission asks for location access where the platform requires
	// it. Implementations return ErrPermissionDenied when refused.
	RequestPermission(ctx context.Context) error
	// Current acquires one position fix. The context carries the per-fix
	// timeout.
	Current(ctx context.Context, highAccuracy bool) (models.LocationSample, error)
}

// Geocoder turns coordinates into a human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error)
}
