package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanauto/models"
	"urbanauto/services/identity"
)

type fakeAccount struct {
	id        string
	password  string
	confirmed bool
	metadata  map[string]string
}

// fakeProvider is an in-memory identity provider with the same error
// taxonomy as the real one.
type fakeProvider struct {
	mu          sync.Mutex
	accounts    map[string]*fakeAccount
	session     *identity.Session
	subscribers []func(identity.SessionEvent)

	blockGetSession bool
	signOutErr      error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{accounts: make(map[string]*fakeAccount)}
}

func (p *fakeProvider) GetSession(ctx context.Context) (*identity.Session, error) {
	if p.blockGetSession {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session, nil
}

func (p *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.accounts[email]
	if !ok {
		return nil, identity.ErrNoAccount
	}
	if acct.password != password {
		return nil, identity.ErrInvalidCredentials
	}
	if !acct.confirmed {
		return nil, identity.ErrEmailNotConfirmed
	}

	p.session = &identity.Session{
		UserID:   acct.id,
		Email:    email,
		Token:    "token-" + acct.id,
		Metadata: acct.metadata,
	}
	return p.session, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.session = nil
	p.mu.Unlock()
	return p.signOutErr
}

func (p *fakeProvider) Subscribe(fn func(identity.SessionEvent)) func() {
	p.mu.Lock()
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
	return func() {}
}

func (p *fakeProvider) AdminCreateUser(ctx context.Context, email, password string, metadata map[string]string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[email]; exists {
		return "", identity.ErrDuplicateAccount
	}
	id := fmt.Sprintf("user-%d", len(p.accounts)+1)
	p.accounts[email] = &fakeAccount{id: id, password: password, confirmed: true, metadata: metadata}
	return id, nil
}

func (p *fakeProvider) emit(evt identity.SessionEvent) {
	p.mu.Lock()
	subs := make([]func(identity.SessionEvent), len(p.subscribers))
	copy(subs, p.subscribers)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(evt)
	}
}

// fakeProfileRepo is an in-memory profile store.
type fakeProfileRepo struct {
	mu        sync.Mutex
	byID      map[string]models.Profile
	upsertErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[string]models.Profile)}
}

func (r *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byID {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Upsert(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.byID[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func newTestStore(provider identity.Provider, profiles *fakeProfileRepo) *Store {
	return NewStore(provider, profiles, 100*time.Millisecond)
}

func TestSignupThenLoginSharesIdentity(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	store := newTestStore(provider, profiles)

	err := store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret")
	require.NoError(t, err)

	u := store.Current()
	require.NotNil(t, u)
	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, Authenticated, store.State())

	signupID := u.ID
	store.Logout(context.Background())
	require.Nil(t, store.Current())

	require.NoError(t, store.Login(context.Background(), "asha@example.com", "s3cret"))
	u = store.Current()
	require.NotNil(t, u)
	assert.Equal(t, signupID, u.ID, "login should resolve the same account signup created")
}

func TestSignupRejectsMissingFields(t *testing.T) {
	store := newTestStore(newFakeProvider(), newFakeProfileRepo())

	err := store.Signup(context.Background(), "Asha", "", "9900112233", "s3cret")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeValidation, authErr.Code)
}

func TestSignupDuplicateAccount(t *testing.T) {
	provider := newFakeProvider()
	store := newTestStore(provider, newFakeProfileRepo())

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))

	err := store.Signup(context.Background(), "Asha Again", "asha@example.com", "9900112233", "0ther")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeDuplicateAccount, authErr.Code)
}

func TestSignupReportsPartialProfileFailure(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	profiles.upsertErr = fmt.Errorf("profile store down")
	store := newTestStore(provider, profiles)

	err := store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeProvider, authErr.Code)
	assert.Equal(t, "account created but profile setup failed", authErr.Message)

	// the account itself exists despite the failed profile write
	_, exists := provider.accounts["asha@example.com"]
	assert.True(t, exists)
}

func TestLoginWrongPasswordLeavesIdentityUnset(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	store := newTestStore(provider, profiles)

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))
	store.Logout(context.Background())

	err := store.Login(context.Background(), "asha@example.com", "wrong")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeInvalidCredentials, authErr.Code)
	assert.Equal(t, "incorrect password", authErr.Message)
	assert.Nil(t, store.Current())
}

func TestLoginUnknownEmail(t *testing.T) {
	store := newTestStore(newFakeProvider(), newFakeProfileRepo())

	err := store.Login(context.Background(), "nobody@example.com", "whatever")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeNotFound, authErr.Code)
}

func TestLoginUnconfirmedFallsBackToProfileLookup(t *testing.T) {
	provider := newFakeProvider()
	provider.accounts["old@example.com"] = &fakeAccount{id: "user-9", password: "s3cret", confirmed: false}

	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Upsert(&models.Profile{
		ID: "user-9", FullName: "Old Timer", Email: "old@example.com", Phone: "9900112233",
	}))

	store := newTestStore(provider, profiles)
	require.NoError(t, store.Login(context.Background(), "old@example.com", "s3cret"))

	u := store.Current()
	require.NotNil(t, u)
	assert.Equal(t, "user-9", u.ID)
	assert.Equal(t, "Old Timer", u.Name)
}

func TestLoginUnconfirmedWithoutProfileFails(t *testing.T) {
	provider := newFakeProvider()
	provider.accounts["old@example.com"] = &fakeAccount{id: "user-9", password: "s3cret", confirmed: false}

	store := newTestStore(provider, newFakeProfileRepo())
	err := store.Login(context.Background(), "old@example.com", "s3cret")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeNotFound, authErr.Code)
	assert.Nil(t, store.Current())
}

func TestBootstrapTimesOutToAnonymous(t *testing.T) {
	provider := newFakeProvider()
	provider.blockGetSession = true

	store := newTestStore(provider, newFakeProfileRepo())
	store.Start(context.Background())
	defer store.Stop()

	assert.Eventually(t, func() bool {
		return store.State() == Anonymous
	}, time.Second, 10*time.Millisecond, "a hung provider must not leave the store loading forever")
	assert.Nil(t, store.Current())
}

func TestBootstrapHydratesExistingSession(t *testing.T) {
	provider := newFakeProvider()
	provider.session = &identity.Session{
		UserID: "user-3", Email: "nia@example.com",
		Metadata: map[string]string{"full_name": "Nia", "phone": "9988776655"},
	}

	store := newTestStore(provider, newFakeProfileRepo())
	store.Start(context.Background())
	defer store.Stop()

	assert.Eventually(t, func() bool {
		return store.State() == Authenticated
	}, time.Second, 10*time.Millisecond)

	u := store.Current()
	require.NotNil(t, u)
	assert.Equal(t, "user-3", u.ID)
	assert.Equal(t, "Nia", u.Name, "identity synthesized from session metadata when no profile row exists")
}

func TestLogoutRunsHooksOnce(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	store := newTestStore(provider, profiles)

	var calls int
	store.OnLogout(func() { calls++ })

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))
	store.Logout(context.Background())
	assert.Equal(t, 1, calls)
	assert.Equal(t, Anonymous, store.State())

	// logging out while already anonymous does not re-fire hooks
	store.Logout(context.Background())
	assert.Equal(t, 1, calls)
}

func TestLogoutSwallowsProviderError(t *testing.T) {
	provider := newFakeProvider()
	provider.signOutErr = fmt.Errorf("provider offline")
	store := newTestStore(provider, newFakeProfileRepo())

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))
	store.Logout(context.Background())

	assert.Nil(t, store.Current())
	assert.Equal(t, Anonymous, store.State())
}

func TestSignedOutEventClearsIdentity(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	store := newTestStore(provider, profiles)
	store.Start(context.Background())
	defer store.Stop()

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))
	require.NotNil(t, store.Current())

	provider.emit(identity.SessionEvent{Type: identity.EventSignedOut})

	assert.Eventually(t, func() bool {
		return store.Current() == nil && store.State() == Anonymous
	}, time.Second, 10*time.Millisecond)
}

func TestSignedInEventForCurrentUserIsIgnored(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	store := newTestStore(provider, profiles)
	store.Start(context.Background())
	defer store.Stop()

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))
	u := store.Current()
	require.NotNil(t, u)

	// a background sync for the same user must not clobber the identity
	provider.emit(identity.SessionEvent{
		Type:    identity.EventSignedIn,
		Session: &identity.Session{UserID: u.ID, Email: u.Email},
	})

	time.Sleep(50 * time.Millisecond)
	after := store.Current()
	require.NotNil(t, after)
	assert.Equal(t, "Asha", after.Name)
}

func TestUpdateProfileReplacesIdentity(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileRepo()
	store := newTestStore(provider, profiles)

	require.NoError(t, store.Signup(context.Background(), "Asha", "asha@example.com", "9900112233", "s3cret"))
	require.NoError(t, store.UpdateProfile(context.Background(), "Asha R", "9911223344"))

	u := store.Current()
	require.NotNil(t, u)
	assert.Equal(t, "Asha R", u.Name)
	assert.Equal(t, "9911223344", u.Phone)

	stored, err := profiles.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Asha R", stored.FullName)
}
