package location

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"urbanauto/models"
)

const (
	sampleCount               = 5
	sampleTimeout             = 10 * time.Second
	samplePause               = time.Second
	accuracyAdvisoryThreshold = 100.0
)

// AdvisoryMessage is surfaced to the user when even the best fix is too
// coarse to trust for an address.
const AdvisoryMessage = "We couldn't get an exact location. Please adjust your address manually."

// Result is the outcome of one sampling run. Address is always resolved
// from the best fix; Advisory is set when that fix is coarser than
// accuracyAdvisoryThreshold metres.
type Result struct {
	Address  *models.Address       `json:"address"`
	Sample   models.LocationSample `json:"sample"`
	Advisory string                `json:"advisory,omitempty"`
}

// Sampler takes several high-accuracy fixes and keeps the best one
// before reverse geocoding. A single fix on mobile hardware is often a
// stale cell-tower estimate; sampling lets the GPS settle.
type Sampler struct {
	Source   PositionSource
	Geocoder Geocoder
}

func NewSampler(source PositionSource, geocoder Geocoder) *Sampler {
	return &Sampler{Source: source, Geocoder: geocoder}
}

// Locate runs the full permission -> sample -> geocode pipeline.
func (s *Sampler) Locate(ctx context.Context) (*Result, error) {
	if err := s.Source.RequestPermission(ctx); err != nil {
		var locErr *Error
		if errors.As(err, &locErr) {
			return nil, locErr
		}
		return nil, &Error{Code: CodePermissionDenied, Message: "location permission denied", Err: err}
	}

	best, err := s.sample(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Sample: *best}
	if best.Accuracy > accuracyAdvisoryThreshold {
		result.Advisory = AdvisoryMessage
	}

	addr, err := s.Geocoder.ReverseGeocode(ctx, best.Latitude, best.Longitude)
	if err != nil {
		return nil, errGeocode(err)
	}
	addr.Latitude = best.Latitude
	addr.Longitude = best.Longitude
	result.Address = addr
	return result, nil
}

// SelectBest picks the fix with the lowest (best) reported accuracy and
// reports whether it is still too coarse to trust for an address.
func SelectBest(samples []models.LocationSample) (*models.LocationSample, bool) {
	var best *models.LocationSample
	for i := range samples {
		if best == nil || samples[i].Accuracy < best.Accuracy {
			best = &samples[i]
		}
	}
	if best == nil {
		return nil, false
	}
	return best, best.Accuracy > accuracyAdvisoryThreshold
}

// sample collects up to sampleCount fixes and returns the one with the
// lowest (best) reported accuracy. Individual fix failures are logged
// and skipped; the run only fails when no fix succeeded at all.
func (s *Sampler) sample(ctx context.Context) (*models.LocationSample, error) {
	var best *models.LocationSample
	var lastErr error

	for i := 0; i < sampleCount; i++ {
		if i > 0 {
			select {
			case <-time.After(samplePause):
			case <-ctx.Done():
				if best != nil {
					return best, nil
				}
				return nil, errTimeout(ctx.Err())
			}
		}

		fixCtx, cancel := context.WithTimeout(ctx, sampleTimeout)
		fix, err := s.Source.Current(fixCtx, true)
		cancel()
		if err != nil {
			lastErr = err
			zap.L().Warn("location fix failed", zap.Int("attempt", i+1), zap.Error(err))
			continue
		}
		if best == nil || fix.Accuracy < best.Accuracy {
			f := fix
			best = &f
		}
	}

	if best == nil {
		return nil, errTimeout(lastErr)
	}
	return best, nil
}
