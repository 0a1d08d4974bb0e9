package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"urbanauto/models"
)

// MapplsGeocoder reverse geocodes against the Mappls (MapmyIndia) API.
// It is used as a fallback when Nominatim is unreachable, since Mappls
// has better coverage for Indian addresses.
type MapplsGeocoder struct {
	AccessToken string
	Client      *http.Client
}

func NewMapplsGeocoder(accessToken string) *MapplsGeocoder {
	return &MapplsGeocoder{
		AccessToken: accessToken,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type mapplsResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Street           string `json:"street"`
		SubLocality      string `json:"subLocality"`
		City             string `json:"city"`
		Pincode          string `json:"pincode"`
	} `json:"results"`
}

func (g *MapplsGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	if g.AccessToken == "" {
		return nil, fmt.Errorf("mappls access token is not configured")
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lng", fmt.Sprintf("%f", lon))

	endpoint := fmt.Sprintf("https://apis.mappls.com/advancedmaps/v1/%s/rev_geocode?%s", g.AccessToken, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build mappls request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mappls request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mappls returned status %d", resp.StatusCode)
	}

	var body mapplsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode mappls response: %w", err)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("mappls returned no results")
	}

	r := body.Results[0]
	return &models.Address{
		DisplayName: r.FormattedAddress,
		Road:        r.Street,
		Suburb:      r.SubLocality,
		City:        r.City,
		Postcode:    r.Pincode,
	}, nil
}
