package models

// LocationSample is a single device position fix. Accuracy is a radius-like
// uncertainty value in meters; lower is better.
type LocationSample struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Address is a reverse-geocoded, human-readable address.
type Address struct {
	DisplayName string  `json:"display_name"`
	Road        string  `json:"road,omitempty"`
	Suburb      string  `json:"suburb,omitempty"`
	City        string  `json:"city,omitempty"`
	Postcode    string  `json:"postcode,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
}
