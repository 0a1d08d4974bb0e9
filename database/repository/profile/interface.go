package profileRepo

import "urbanauto/models"

// ProfileRepository defines methods for profile-row data access.
type ProfileRepository interface {
	// GetByID retrieves a profile by its identity id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Profile, error)
	// GetByEmail retrieves a profile by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.Profile, error)
	// Upsert inserts or replaces the profile row keyed by its id.
	Upsert(profile *models.Profile) error
	// Delete removes a profile row by its identity id.
	Delete(id string) error
}
