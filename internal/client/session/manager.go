package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
	"github.com/claranceliberi/uni-resource-hub/internal/logging"
)

// State is the manager's position in the authentication lifecycle.
type State string

const (
	StateInitializing    State = "initializing"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// AuthAPI is the slice of the HTTP client the manager drives.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
	Register(ctx context.Context, reg models.Registration) (*models.Identity, error)
	Me(ctx context.Context) (*models.Identity, error)
}

// Manager owns the session state machine. It is the only writer of the
// persisted credential/identity pair; the api layer reads the credential
// through the Store on every request.
type Manager struct {
	api   AuthAPI
	store *Store
	log   logging.Logger

	mu       sync.Mutex
	state    State
	identity *models.Identity
	loading  bool
}

func NewManager(api AuthAPI, store *Store, log logging.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		state: StateInitializing,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Identity returns the cached identity, or nil when unauthenticated.
func (m *Manager) Identity() *models.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

// IsLoading reports whether an auth operation is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// Initialize restores a persisted session on startup. A missing,
// unreadable, expired or server-rejected session leaves the manager
// Unauthenticated with storage cleared; only a storage failure is
// returned as an error.
func (m *Manager) Initialize(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	token, identity, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "discarding unreadable session", "error", err)
		return m.clear(ctx)
	}
	if token == "" || identity == nil {
		return m.clear(ctx)
	}

	if tokenExpired(token) {
		m.log.Info(ctx, "stored token expired, clearing session")
		return m.clear(ctx)
	}

	fresh, err := m.api.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored session rejected by server", "error", err)
		return m.clear(ctx)
	}
	return m.establish(ctx, token, fresh)
}

// Login exchanges credentials for a token, fetches the identity and
// persists both. Any failure along the way leaves the manager
// Unauthenticated with nothing persisted.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)
	return m.login(ctx, email, password)
}

func (m *Manager) login(ctx context.Context, email, password string) error {
	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		if cerr := m.clear(ctx); cerr != nil {
			m.log.Error(ctx, "clearing session after failed login", "error", cerr)
		}
		return fmt.Errorf("login: %w", err)
	}

	// Persist the credential first so the identity fetch goes out
	// authenticated. A lone credential is not a session: Load ignores it.
	if err := m.store.SaveToken(ctx, token.AccessToken); err != nil {
		if cerr := m.clear(ctx); cerr != nil {
			m.log.Error(ctx, "clearing session after failed token persist", "error", cerr)
		}
		return fmt.Errorf("persist token: %w", err)
	}

	identity, err := m.api.Me(ctx)
	if err != nil {
		if cerr := m.clear(ctx); cerr != nil {
			m.log.Error(ctx, "clearing session after failed identity fetch", "error", cerr)
		}
		return fmt.Errorf("fetch identity: %w", err)
	}
	return m.establish(ctx, token.AccessToken, identity)
}

// Register creates the account and then runs the full login flow with the
// same credentials. The manager ends up Authenticated only when both steps
// succeed.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if _, err := m.api.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return m.login(ctx, reg.Email, reg.Password)
}

// Logout discards the session locally. No server call is made, and calling
// it while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	return m.clear(ctx)
}

// RefreshUser re-fetches the identity from the server. A failure is treated
// as an invalid session: both state and storage are cleared.
func (m *Manager) RefreshUser(ctx context.Context) error {
	identity, err := m.api.Me(ctx)
	if err != nil {
		if cerr := m.clear(ctx); cerr != nil {
			return cerr
		}
		return fmt.Errorf("refresh user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.SaveIdentity(ctx, identity); err != nil {
		return err
	}
	m.identity = identity
	m.state = StateAuthenticated
	return nil
}

// UpdateUser replaces the cached identity after a successful profile edit.
// The credential is untouched.
func (m *Manager) UpdateUser(ctx context.Context, identity *models.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.SaveIdentity(ctx, identity); err != nil {
		return err
	}
	m.identity = identity
	return nil
}

// HandleUnauthorized reacts to a 401 surfaced by any in-flight request.
// The session is torn down exactly once; concurrent callers find the state
// already Unauthenticated and return without touching storage.
func (m *Manager) HandleUnauthorized(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateUnauthenticated {
		return nil
	}
	m.log.Info(ctx, "session no longer valid, logging out")
	return m.clearLocked(ctx)
}

func (m *Manager) establish(ctx context.Context, token string, identity *models.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(ctx, token, identity); err != nil {
		_ = m.clearLocked(ctx)
		return fmt.Errorf("persist session: %w", err)
	}
	m.identity = identity
	m.state = StateAuthenticated
	return nil
}

func (m *Manager) clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearLocked(ctx)
}

func (m *Manager) clearLocked(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.identity = nil
	m.state = StateUnauthenticated
	return nil
}

// tokenExpired decodes the token without verifying the signature and checks
// its exp claim. Opaque tokens and tokens without exp are left for the
// server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
