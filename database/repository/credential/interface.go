package credentialRepo

import "urbanauto/models"

// CredentialRepository defines data access for identity-provider accounts.
type CredentialRepository interface {
	// Create inserts a new credential record. Email uniqueness is enforced
	// by the store.
	Create(cred *models.Credential) error
	// GetByID retrieves a credential by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Credential, error)
	// GetByEmail retrieves a credential by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.Credential, error)
	// Delete removes a credential record by its id.
	Delete(id string) error
}
