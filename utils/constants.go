package utils

import "time"

// SessionKeyPrefix is the prefix used for Redis identity-session keys.
const SessionKeyPrefix = "session:"

// SessionTTL is how long a signed-in identity session stays valid.
const SessionTTL = 30 * 24 * time.Hour
