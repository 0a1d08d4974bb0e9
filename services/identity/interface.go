package identity

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors reported by the provider. The session store translates
// these into its caller-facing taxonomy.
var (
	// ErrNoAccount means no credential matches the given email.
	ErrNoAccount = errors.New("no account found with this email")
	// ErrInvalidCredentials means the password did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailNotConfirmed means the credential exists but was never
	// confirmed. Accounts created through the trusted signup endpoint are
	// auto-confirmed, so this only fires for records predating that policy.
	ErrEmailNotConfirmed = errors.New("email not confirmed")
	// ErrDuplicateAccount means an account with that email already exists.
	ErrDuplicateAccount = errors.New("an account with this email already exists")
)

// Session is an established identity-provider session.
type Session struct {
	UserID    string            `json:"userId"`
	Email     string            `json:"email"`
	Token     string            `json:"token"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// EventType classifies a session-change event.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// SessionEvent is pushed to subscribers whenever the session changes.
// Session is nil for signed_out events.
type SessionEvent struct {
	Type    EventType
	Session *Session
}

// Provider is the identity-provider surface the session store consumes.
type Provider interface {
	// GetSession returns the current session, or (nil, nil) when signed out.
	GetSession(ctx context.Context) (*Session, error)
	// SignInWithPassword authenticates with email and password.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignOut terminates the current session.
	SignOut(ctx context.Context) error
	// Subscribe registers a session-change callback and returns a cancel func.
	Subscribe(fn func(SessionEvent)) (cancel func())
	// AdminCreateUser registers a new, auto-confirmed account. It must only
	// be reachable through the trusted server-side signup endpoint.
	AdminCreateUser(ctx context.Context, email, password string, metadata map[string]string) (string, error)
}
