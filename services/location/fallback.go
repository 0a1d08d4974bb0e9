package location

import (
	"context"

	"go.uber.org/zap"

	"urbanauto/models"
)

// FallbackGeocoder tries each geocoder in order and returns the first
// successful result.
type FallbackGeocoder struct {
	Geocoders []Geocoder
}

func NewFallbackGeocoder(geocoders ...Geocoder) *FallbackGeocoder {
	return &FallbackGeocoder{Geocoders: geocoders}
}

func (g *FallbackGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	var lastErr error
	for _, geo := range g.Geocoders {
		addr, err := geo.ReverseGeocode(ctx, lat, lon)
		if err == nil {
			return addr, nil
		}
		lastErr = err
		zap.L().Warn("reverse geocode failed, trying next provider", zap.Error(err))
	}
	return nil, lastErr
}
