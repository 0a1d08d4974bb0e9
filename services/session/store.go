package session

import (
	"context"
	"errors"
	"sync"
	"time"

	profileRepo "urbanauto/database/repository/profile"
	"urbanauto/models"
	"urbanauto/services/identity"
	"urbanauto/utils"

	"go.uber.org/zap"
)

// Store is the single source of truth for "who is logged in". It mirrors the
// identity provider's session lifecycle and owns the one Identity value every
// other component observes. Only the store mutates that value.
type Store struct {
	Provider         identity.Provider
	Profiles         profileRepo.ProfileRepository
	BootstrapTimeout time.Duration

	mu      sync.RWMutex
	state   State
	current *models.User

	cancelSub func()

	hookMu   sync.Mutex
	onLogout []func()
}

// NewStore builds a session store. bootstrapTimeout caps how long the store
// waits for the provider on startup before reporting Anonymous.
func NewStore(provider identity.Provider, profiles profileRepo.ProfileRepository, bootstrapTimeout time.Duration) *Store {
	if bootstrapTimeout <= 0 {
		bootstrapTimeout = 5 * time.Second
	}
	return &Store{
		Provider:         provider,
		Profiles:         profiles,
		BootstrapTimeout: bootstrapTimeout,
		state:            Uninitialized,
	}
}

// Start subscribes to provider session events and kicks off the bootstrap
// session lookup. It returns immediately; the state moves to Authenticated or
// Anonymous asynchronously.
func (s *Store) Start(ctx context.Context) {
	s.setState(Loading)
	s.cancelSub = s.Provider.Subscribe(s.handleEvent)
	go s.bootstrap(ctx)
}

// Stop unsubscribes from provider events. The current identity is untouched.
func (s *Store) Stop() {
	if s.cancelSub != nil {
		s.cancelSub()
		s.cancelSub = nil
	}
}

// Current returns a copy of the active identity, or nil when anonymous.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// State returns the store's lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OnLogout registers a hook that runs whenever the identity is cleared, e.g.
// so the booking cache can drop its snapshot.
func (s *Store) OnLogout(fn func()) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Signup registers a new account through the trusted server-side path:
// admin account creation, profile upsert, then a normal login. The two
// failure modes of the trusted path are reported distinctly so the caller can
// decide whether to retry or proceed.
func (s *Store) Signup(ctx context.Context, name, email, phone, password string) error {
	if name == "" || email == "" || phone == "" || password == "" {
		return newAuthError(CodeValidation, "all fields are required", nil)
	}

	userID, err := s.Provider.AdminCreateUser(ctx, email, password, map[string]string{
		"full_name": name,
		"phone":     phone,
	})
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateAccount) {
			return newAuthError(CodeDuplicateAccount, "an account with this email already exists", err)
		}
		return newAuthError(CodeProvider, "registration failed, please try again", err)
	}

	profile := models.Profile{
		ID:       userID,
		FullName: name,
		Email:    email,
		Phone:    phone,
	}
	if err := s.Profiles.Upsert(&profile); err != nil {
		// The account exists but the profile row does not. Report the partial
		// failure distinctly rather than pretending the signup never happened.
		utils.GetLogger().Error("Signup: profile upsert failed after account creation",
			zap.String("userId", userID), zap.Error(err))
		return newAuthError(CodeProvider, "account created but profile setup failed", err)
	}

	return s.Login(ctx, email, password)
}

// Login authenticates against the identity provider and derives the identity
// from the profile row. The email-not-confirmed fallback is a documented
// bypass: the auto-confirm policy is assumed upstream, so a profile lookup by
// email stands in for a confirmed session.
func (s *Store) Login(ctx context.Context, email, password string) error {
	sess, err := s.Provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailNotConfirmed):
			return s.loginUnconfirmed(email, err)
		case errors.Is(err, identity.ErrNoAccount):
			return newAuthError(CodeNotFound, "no account found with this email", err)
		case errors.Is(err, identity.ErrInvalidCredentials):
			return newAuthError(CodeInvalidCredentials, "incorrect password", err)
		default:
			return newAuthError(CodeProvider, "login failed, please try again", err)
		}
	}

	s.hydrate(sess)
	return nil
}

// loginUnconfirmed handles the email-not-confirmed bypass path.
func (s *Store) loginUnconfirmed(email string, cause error) error {
	profile, err := s.Profiles.GetByEmail(email)
	if err != nil {
		return newAuthError(CodeProvider, "login failed, please try again", err)
	}
	if profile == nil {
		return newAuthError(CodeNotFound, "no account found with this email", cause)
	}

	utils.GetLogger().Warn("Login: email unconfirmed, proceeding via profile lookup",
		zap.String("userId", profile.ID))
	identityVal := profile.Identity()
	s.setIdentity(&identityVal)
	return nil
}

// Logout terminates the remote session and clears local state. The
// caller-visible path never fails: provider errors are logged only.
func (s *Store) Logout(ctx context.Context) {
	if err := s.Provider.SignOut(ctx); err != nil {
		utils.GetLogger().Error("Logout: provider sign-out failed", zap.Error(err))
	}
	s.clearIdentity()
}

// RefreshProfile replaces the identity wholesale from the stored profile row.
func (s *Store) RefreshProfile(ctx context.Context) error {
	current := s.Current()
	if current == nil {
		return newAuthError(CodeNotFound, "not logged in", nil)
	}
	profile, err := s.Profiles.GetByID(current.ID)
	if err != nil {
		return newAuthError(CodeProvider, "failed to refresh profile", err)
	}
	if profile == nil {
		return newAuthError(CodeNotFound, "profile not found", nil)
	}
	identityVal := profile.Identity()
	s.setIdentity(&identityVal)
	return nil
}

// UpdateProfile rewrites the profile row and replaces the identity wholesale.
func (s *Store) UpdateProfile(ctx context.Context, name, phone string) error {
	current := s.Current()
	if current == nil {
		return newAuthError(CodeNotFound, "not logged in", nil)
	}
	if name == "" {
		return newAuthError(CodeValidation, "name is required", nil)
	}

	profile := models.Profile{
		ID:       current.ID,
		FullName: name,
		Email:    current.Email,
		Phone:    phone,
	}
	if err := s.Profiles.Upsert(&profile); err != nil {
		return newAuthError(CodeProvider, "failed to update profile", err)
	}
	identityVal := profile.Identity()
	s.setIdentity(&identityVal)
	return nil
}

// bootstrap re-derives the identity from the current provider session, capped
// by BootstrapTimeout. On timeout the store reports Anonymous — a liveness
// guarantee, not a correctness one: a later provider event may still
// authenticate.
func (s *Store) bootstrap(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.BootstrapTimeout)
	defer cancel()

	type result struct {
		sess *identity.Session
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		sess, err := s.Provider.GetSession(ctx)
		ch <- result{sess: sess, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			utils.GetLogger().Error("bootstrap: session lookup failed", zap.Error(r.err))
			s.becomeAnonymous()
			return
		}
		if r.sess == nil {
			s.becomeAnonymous()
			return
		}
		s.hydrate(r.sess)
	case <-ctx.Done():
		utils.GetLogger().Warn("bootstrap: session lookup timed out, reporting anonymous")
		s.becomeAnonymous()
	}
}

// handleEvent reacts to provider-pushed session changes. A signed-in event
// for the identity we already hold is skipped so a racing background sync
// cannot clobber a just-completed manual login.
func (s *Store) handleEvent(evt identity.SessionEvent) {
	switch evt.Type {
	case identity.EventSignedOut:
		s.clearIdentity()
	case identity.EventSignedIn:
		if evt.Session == nil {
			return
		}
		s.mu.RLock()
		same := s.current != nil && s.current.ID == evt.Session.UserID
		s.mu.RUnlock()
		if same {
			return
		}
		s.hydrate(evt.Session)
	}
}

// hydrate derives the identity from a provider session: profile row first,
// session metadata as a fallback so the UI is never blocked on profile-row
// propagation latency.
func (s *Store) hydrate(sess *identity.Session) {
	profile, err := s.Profiles.GetByID(sess.UserID)
	if err != nil {
		utils.GetLogger().Error("hydrate: profile lookup failed, synthesizing identity",
			zap.String("userId", sess.UserID), zap.Error(err))
	}

	var u models.User
	if profile != nil {
		u = profile.Identity()
	} else {
		u = models.User{
			ID:    sess.UserID,
			Name:  sess.Metadata["full_name"],
			Email: sess.Email,
			Phone: sess.Metadata["phone"],
		}
	}
	s.setIdentity(&u)
}

func (s *Store) setIdentity(u *models.User) {
	s.mu.Lock()
	s.current = u
	s.state = Authenticated
	s.mu.Unlock()
}

func (s *Store) clearIdentity() {
	s.mu.Lock()
	wasSet := s.current != nil
	s.current = nil
	s.state = Anonymous
	s.mu.Unlock()

	if wasSet {
		s.runLogoutHooks()
	}
}

func (s *Store) becomeAnonymous() {
	s.mu.Lock()
	if s.state == Loading {
		s.state = Anonymous
	}
	s.mu.Unlock()
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Store) runLogoutHooks() {
	s.hookMu.Lock()
	hooks := make([]func(), len(s.onLogout))
	copy(hooks, s.onLogout)
	s.hookMu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
