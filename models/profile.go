package models

import "time"

// Profile is the stored profile row, keyed by the identity id.
type Profile struct {
	ID        string    `json:"id" bson:"id"`
	FullName  string    `json:"full_name" bson:"full_name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Identity converts a profile row into the identity value the session store holds.
func (p *Profile) Identity() User {
	return User{
		ID:    p.ID,
		Name:  p.FullName,
		Email: p.Email,
		Phone: p.Phone,
	}
}
