package models

import "time"

// DeviceToken is a registered push-notification target.
type DeviceToken struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId,omitempty" bson:"user_id,omitempty"`
	Token     string    `json:"token" bson:"token"`
	Platform  string    `json:"platform,omitempty" bson:"platform,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// BroadcastRequest is the payload of the admin push-broadcast endpoint.
type BroadcastRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}
