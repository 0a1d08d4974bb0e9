package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"urbanauto/utils"

	"github.com/go-redis/redis/v8"
)

// currentSessionKey is where the one active session lives. The app holds at
// most a single signed-in identity per process, so the key is fixed.
const currentSessionKey = utils.SessionKeyPrefix + "current"

// saveSession persists the session in Redis with the configured TTL.
func saveSession(client *redis.Client, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, currentSessionKey, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// loadSession retrieves the persisted session. Returns (nil, nil) when none
// is stored or the stored session has expired.
func loadSession(client *redis.Client) (*Session, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, currentSessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		_ = clearSession(client)
		return nil, nil
	}
	return &sess, nil
}

// clearSession removes the persisted session.
func clearSession(client *redis.Client) error {
	ctx := context.Background()
	if err := client.Del(ctx, currentSessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
