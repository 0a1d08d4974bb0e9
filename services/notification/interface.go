package notification

import (
	"context"

	"urbanauto/models"
)

// NotificationService defines methods for sending FCM pushes to
// registered devices.
type NotificationService interface {
	// RegisterDevice stores (or refreshes) a device token so the device
	// receives future broadcasts.
	RegisterDevice(ctx context.Context, token models.DeviceToken) error
	// Broadcast sends a push to every registered device and returns the
	// number of devices reached.
	Broadcast(ctx context.Context, title, body string) (int, error)
	// SendToToken sends a push to a single device token.
	SendToToken(ctx context.Context, token, title, body string, data map[string]string) error
}
