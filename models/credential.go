package models

import "time"

// Credential is an identity-provider account record. The password is stored
// as a bcrypt hash only. Confirmed mirrors the provider's email-confirmation
// flag; accounts created through the trusted signup endpoint are confirmed
// at creation time.
type Credential struct {
	ID           string            `json:"id" bson:"id"`
	Email        string            `json:"email" bson:"email"`
	PasswordHash string            `json:"-" bson:"password_hash"`
	Confirmed    bool              `json:"confirmed" bson:"confirmed"`
	Metadata     map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"createdAt" bson:"created_at"`
}
