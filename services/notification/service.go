package notification

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	devicetokenRepo "urbanauto/database/repository/devicetoken"
	"urbanauto/models"
	"urbanauto/utils"
)

// DefaultNotificationService is the production implementation backed by
// Firebase Cloud Messaging.
type DefaultNotificationService struct {
	Tokens devicetokenRepo.DeviceTokenRepository
}

func NewDefaultNotificationService(tokens devicetokenRepo.DeviceTokenRepository) (*DefaultNotificationService, error) {
	if tokens == nil {
		return nil, fmt.Errorf("notification service initialization error: device token repository is nil")
	}
	return &DefaultNotificationService{Tokens: tokens}, nil
}

func (s *DefaultNotificationService) RegisterDevice(ctx context.Context, token models.DeviceToken) error {
	if token.Token == "" {
		return fmt.Errorf("RegisterDevice: token is required")
	}
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.UpdatedAt = time.Now()
	if err := s.Tokens.Upsert(&token); err != nil {
		return fmt.Errorf("RegisterDevice: failed to store token: %w", err)
	}
	return nil
}

// Broadcast fans a push out to every registered device. Tokens FCM
// reports as unregistered are pruned so the pool does not accumulate
// dead devices.
func (s *DefaultNotificationService) Broadcast(ctx context.Context, title, body string) (int, error) {
	tokens, err := s.Tokens.GetAll()
	if err != nil {
		return 0, fmt.Errorf("Broadcast: failed to load device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return 0, nil
	}

	sent := 0
	for _, t := range tokens {
		if err := s.SendToToken(ctx, t.Token, title, body, nil); err != nil {
			if messaging.IsUnregistered(err) {
				zap.L().Info("pruning unregistered device token", zap.String("tokenId", t.ID))
				if delErr := s.Tokens.DeleteByToken(t.Token); delErr != nil {
					zap.L().Warn("failed to prune device token", zap.String("tokenId", t.ID), zap.Error(delErr))
				}
				continue
			}
			zap.L().Warn("broadcast send failed", zap.String("tokenId", t.ID), zap.Error(err))
			continue
		}
		sent++
	}

	zap.L().Info("broadcast complete", zap.Int("sent", sent), zap.Int("registered", len(tokens)))
	return sent, nil
}

func (s *DefaultNotificationService) SendToToken(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendToToken: FCM client is not initialised")
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendToToken: failed to send FCM message: %w", err)
	}
	return nil
}
