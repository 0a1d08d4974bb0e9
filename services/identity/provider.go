package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	credentialRepo "urbanauto/database/repository/credential"
	"urbanauto/models"
	"urbanauto/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultProvider is the production identity provider: bcrypt credentials in
// MongoDB, the active session persisted in Redis, JWT access tokens, and
// session-change events fanned out to subscribers.
type DefaultProvider struct {
	Creds    credentialRepo.CredentialRepository
	Sessions *redis.Client

	mu          sync.Mutex
	subscribers map[int]func(SessionEvent)
	nextSubID   int
}

// NewDefaultProvider creates a provider backed by the given credential store
// and Redis session client.
func NewDefaultProvider(creds credentialRepo.CredentialRepository, sessions *redis.Client) *DefaultProvider {
	return &DefaultProvider{
		Creds:       creds,
		Sessions:    sessions,
		subscribers: make(map[int]func(SessionEvent)),
	}
}

// GetSession returns the persisted session, or (nil, nil) when signed out.
func (p *DefaultProvider) GetSession(ctx context.Context) (*Session, error) {
	sess, err := loadSession(p.Sessions)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if _, err := utils.ValidateToken(sess.Token); err != nil {
		utils.GetLogger().Warn("GetSession: stored token invalid, clearing session", zap.Error(err))
		_ = clearSession(p.Sessions)
		return nil, nil
	}
	return sess, nil
}

// SignInWithPassword authenticates with email and password and persists the
// resulting session.
func (p *DefaultProvider) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	cred, err := p.Creds.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignInWithPassword: failed to fetch credential", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if cred == nil {
		return nil, ErrNoAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !cred.Confirmed {
		return nil, ErrEmailNotConfirmed
	}

	token, err := utils.GenerateToken(cred.ID, cred.Email, utils.SessionTTL)
	if err != nil {
		utils.GetLogger().Error("SignInWithPassword: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	now := time.Now()
	sess := Session{
		UserID:    cred.ID,
		Email:     cred.Email,
		Token:     token,
		Metadata:  cred.Metadata,
		CreatedAt: now,
		ExpiresAt: now.Add(utils.SessionTTL),
	}
	if err := saveSession(p.Sessions, sess); err != nil {
		return nil, err
	}

	p.emit(SessionEvent{Type: EventSignedIn, Session: &sess})
	return &sess, nil
}

// SignOut terminates the current session.
func (p *DefaultProvider) SignOut(ctx context.Context) error {
	if err := clearSession(p.Sessions); err != nil {
		return err
	}
	p.emit(SessionEvent{Type: EventSignedOut})
	return nil
}

// Subscribe registers a session-change callback and returns a cancel func.
func (p *DefaultProvider) Subscribe(fn func(SessionEvent)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// AdminCreateUser registers a new, auto-confirmed account and returns its id.
func (p *DefaultProvider) AdminCreateUser(ctx context.Context, email, password string, metadata map[string]string) (string, error) {
	existing, err := p.Creds.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AdminCreateUser: failed to check for existing account", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return "", ErrDuplicateAccount
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("AdminCreateUser: failed to hash password", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}

	cred := models.Credential{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashed),
		// Auto-confirm policy: accounts created through the trusted signup
		// endpoint skip the confirmation gate.
		Confirmed: true,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	if err := p.Creds.Create(&cred); err != nil {
		utils.GetLogger().Error("AdminCreateUser: failed to create credential", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}
	return cred.ID, nil
}

// emit delivers an event to every subscriber. Delivery is asynchronous;
// subscribers must tolerate events racing their own calls.
func (p *DefaultProvider) emit(evt SessionEvent) {
	p.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		go fn(evt)
	}
}
