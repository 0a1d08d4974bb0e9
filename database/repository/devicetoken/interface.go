package devicetokenRepo

import "urbanauto/models"

// DeviceTokenRepository defines data access for push-notification targets.
type DeviceTokenRepository interface {
	// Upsert inserts or refreshes a registration keyed by the token string.
	Upsert(token *models.DeviceToken) error
	// GetAll returns every registered device token.
	GetAll() ([]models.DeviceToken, error)
	// DeleteByToken removes a registration by its token string.
	DeleteByToken(token string) error
}
