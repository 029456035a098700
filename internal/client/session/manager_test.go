package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/claranceliberi/uni-resource-hub/internal/client/api"
	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
	"github.com/claranceliberi/uni-resource-hub/internal/logging"
)

type fakeAuthAPI struct {
	mu sync.Mutex

	loginToken *models.Token
	loginErr   error

	registerIdentity *models.Identity
	registerErr      error

	meIdentity *models.Identity
	meErr      error

	loginCalls    int
	registerCalls int
	meCalls       int

	lastEmail    string
	lastPassword string
}

func (f *fakeAuthAPI) Login(_ context.Context, email, password string) (*models.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	f.lastEmail = email
	f.lastPassword = password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, _ models.Registration) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerIdentity, nil
}

func (f *fakeAuthAPI) Me(_ context.Context) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meIdentity, nil
}

func newTestManager(t *testing.T, fake *fakeAuthAPI) (*Manager, *Store) {
	t.Helper()
	store := newTestStore(t)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewManager(fake, store, log), store
}

func requireLoggedOut(t *testing.T, m *Manager, store *Store) {
	t.Helper()
	require.Equal(t, StateUnauthenticated, m.State())
	require.Nil(t, m.Identity())

	token, identity, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, identity)

	got, err := store.AccessToken(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "ada@example.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return signed
}

func TestManager_StartsInitializing(t *testing.T) {
	m, _ := newTestManager(t, &fakeAuthAPI{})
	require.Equal(t, StateInitializing, m.State())
}

func TestInitialize_NoPersistedSession(t *testing.T) {
	fake := &fakeAuthAPI{}
	m, store := newTestManager(t, fake)

	require.NoError(t, m.Initialize(context.Background()))

	requireLoggedOut(t, m, store)
	require.Zero(t, fake.meCalls)
}

func TestInitialize_RestoresValidSession(t *testing.T) {
	fresh := testIdentity()
	fresh.FirstName = "Augusta"
	fake := &fakeAuthAPI{meIdentity: fresh}
	m, store := newTestManager(t, fake)

	require.NoError(t, store.Save(context.Background(), "tok1", testIdentity()))
	require.NoError(t, m.Initialize(context.Background()))

	require.Equal(t, StateAuthenticated, m.State())
	require.Equal(t, 1, fake.meCalls)
	// The identity cache holds the server's copy, not the stale stored one.
	require.Equal(t, "Augusta", m.Identity().FirstName)

	_, identity, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Augusta", identity.FirstName)
}

func TestInitialize_RejectedSessionIsCleared(t *testing.T) {
	fake := &fakeAuthAPI{meErr: &api.APIError{Status: 401, Detail: "Could not validate credentials"}}
	m, store := newTestManager(t, fake)

	require.NoError(t, store.Save(context.Background(), "tok1", testIdentity()))
	require.NoError(t, m.Initialize(context.Background()))

	requireLoggedOut(t, m, store)
}

func TestInitialize_ExpiredTokenSkipsNetwork(t *testing.T) {
	fake := &fakeAuthAPI{meIdentity: testIdentity()}
	m, store := newTestManager(t, fake)

	require.NoError(t, store.Save(context.Background(), expiredJWT(t), testIdentity()))
	require.NoError(t, m.Initialize(context.Background()))

	requireLoggedOut(t, m, store)
	require.Zero(t, fake.meCalls)
}

func TestLogin_Success(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)

	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	require.Equal(t, StateAuthenticated, m.State())
	require.Equal(t, "ada@example.com", fake.lastEmail)
	require.Equal(t, "s3cret", fake.lastPassword)
	require.Equal(t, "ada@example.com", m.Identity().Email)

	token, identity, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok1", token)
	require.Equal(t, int64(7), identity.ID)
}

func TestLogin_BadCredentials(t *testing.T) {
	fake := &fakeAuthAPI{loginErr: api.ErrUnauthorized}
	m, store := newTestManager(t, fake)

	err := m.Login(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)

	requireLoggedOut(t, m, store)
	require.Zero(t, fake.meCalls)
}

func TestLogin_TokenPersistFails_LeavesUnauthenticated(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}

	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := NewStore(db)

	// Inserts fail, deletes still work, so the cleanup path stays usable.
	_, err = db.Exec(`CREATE TRIGGER metadata_readonly BEFORE INSERT ON metadata
		BEGIN SELECT RAISE(ABORT, 'metadata is read-only'); END`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := NewManager(fake, store, log)

	err = m.Login(context.Background(), "ada@example.com", "s3cret")
	require.ErrorContains(t, err, "persist token")

	require.Equal(t, StateUnauthenticated, m.State())
	require.Nil(t, m.Identity())
	require.Zero(t, fake.meCalls)

	token, identity, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, identity)
}

func TestLogin_IdentityFetchFails(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meErr:      api.ErrUnavailable,
	}
	m, store := newTestManager(t, fake)

	err := m.Login(context.Background(), "ada@example.com", "s3cret")
	require.ErrorIs(t, err, api.ErrUnavailable)

	// The half-written credential must not survive.
	requireLoggedOut(t, m, store)
}

func TestRegister_AutoLogin(t *testing.T) {
	fake := &fakeAuthAPI{
		registerIdentity: testIdentity(),
		loginToken:       &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity:       testIdentity(),
	}
	m, store := newTestManager(t, fake)

	reg := models.Registration{
		Email:     "ada@example.com",
		Password:  "s3cret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	require.NoError(t, m.Register(context.Background(), reg))

	require.Equal(t, 1, fake.registerCalls)
	require.Equal(t, 1, fake.loginCalls)
	require.Equal(t, "ada@example.com", fake.lastEmail)
	require.Equal(t, "s3cret", fake.lastPassword)
	require.Equal(t, StateAuthenticated, m.State())

	token, _, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok1", token)
}

func TestRegister_Failure_NoLoginAttempt(t *testing.T) {
	fake := &fakeAuthAPI{registerErr: &api.APIError{Status: 400, Detail: "Email already registered"}}
	m, store := newTestManager(t, fake)

	err := m.Register(context.Background(), models.Registration{Email: "ada@example.com", Password: "s3cret"})
	require.Error(t, err)

	require.Zero(t, fake.loginCalls)
	requireLoggedOut(t, m, store)
}

func TestRegister_LoginStepFails(t *testing.T) {
	fake := &fakeAuthAPI{
		registerIdentity: testIdentity(),
		loginErr:         api.ErrUnavailable,
	}
	m, store := newTestManager(t, fake)

	err := m.Register(context.Background(), models.Registration{Email: "ada@example.com", Password: "s3cret"})
	require.ErrorIs(t, err, api.ErrUnavailable)

	require.Equal(t, 1, fake.registerCalls)
	requireLoggedOut(t, m, store)
}

func TestLogout_IsIdempotent(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)

	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	require.NoError(t, m.Logout(context.Background()))
	requireLoggedOut(t, m, store)

	require.NoError(t, m.Logout(context.Background()))
	requireLoggedOut(t, m, store)
}

func TestRefreshUser_UpdatesIdentity(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)
	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	renamed := testIdentity()
	renamed.LastName = "King"
	fake.meIdentity = renamed

	require.NoError(t, m.RefreshUser(context.Background()))
	require.Equal(t, "King", m.Identity().LastName)

	token, identity, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok1", token)
	require.Equal(t, "King", identity.LastName)
}

func TestRefreshUser_FailureClearsSession(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)
	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	fake.meErr = api.ErrUnauthorized

	err := m.RefreshUser(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)

	// Failed refresh is a full logout: no stale identity may linger.
	requireLoggedOut(t, m, store)
}

func TestUpdateUser_ReplacesCachedIdentity(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)
	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	edited := testIdentity()
	edited.FirstName = "Augusta"
	require.NoError(t, m.UpdateUser(context.Background(), edited))

	require.Equal(t, StateAuthenticated, m.State())
	require.Equal(t, "Augusta", m.Identity().FirstName)

	token, identity, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok1", token)
	require.Equal(t, "Augusta", identity.FirstName)
}

func TestHandleUnauthorized_ClearsOnce(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)
	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	require.NoError(t, m.HandleUnauthorized(context.Background()))
	requireLoggedOut(t, m, store)

	// Already unauthenticated: nothing to do.
	require.NoError(t, m.HandleUnauthorized(context.Background()))
	requireLoggedOut(t, m, store)
}

func TestHandleUnauthorized_Concurrent(t *testing.T) {
	fake := &fakeAuthAPI{
		loginToken: &models.Token{AccessToken: "tok1", TokenType: "bearer"},
		meIdentity: testIdentity(),
	}
	m, store := newTestManager(t, fake)
	require.NoError(t, m.Login(context.Background(), "ada@example.com", "s3cret"))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.HandleUnauthorized(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	requireLoggedOut(t, m, store)
}

func TestLoadingFlag_ClearedAfterFailure(t *testing.T) {
	fake := &fakeAuthAPI{loginErr: errors.New("boom")}
	m, _ := newTestManager(t, fake)

	require.Error(t, m.Login(context.Background(), "ada@example.com", "s3cret"))
	require.False(t, m.IsLoading())
}
