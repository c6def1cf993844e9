package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"medicheck/cli/internal/models"
)

// State is the session lifecycle state. There is no error state:
// a failed restoration collapses to StateLoggedOut.
type State int

const (
	StateLoggedOut State = iota
	StateRestoring
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateRestoring:
		return "restoring"
	case StateLoggedIn:
		return "logged_in"
	}
	return "unknown"
}

// Session is a point-in-time snapshot of the authentication state.
// User is non-nil only when Token is non-empty.
type Session struct {
	Token string
	User  *models.User
	State State
}

// Backend is what the Manager needs from the remote API.
type Backend interface {
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)
	FetchCurrentUser(ctx context.Context) (models.User, error)
}

// Manager is the single owner of the authentication token and current
// identity for the lifetime of the process. All mutation goes through
// Restore, Login and Logout; everything else reads snapshots.
//
// Concurrent operations are resolved with an epoch counter: each
// settled mutation advances the epoch, and an in-flight restoration
// discards its result if the epoch moved while its profile fetch was
// on the wire. A logout during a slow restore therefore stays a
// logout.
type Manager struct {
	mu      sync.Mutex
	backend Backend
	store   TokenStore
	log     zerolog.Logger

	token string
	user  *models.User
	state State
	epoch uint64

	subs []func(Session)
}

// NewManager seeds the token from the store. The state starts as
// StateRestoring when a token was found, StateLoggedOut otherwise;
// call Bind and then Restore to settle it.
func NewManager(store TokenStore, log zerolog.Logger) *Manager {
	m := &Manager{
		store: store,
		log:   log,
		state: StateLoggedOut,
	}

	token, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("token restore read failed")
		return m
	}
	if token != "" {
		m.token = token
		m.state = StateRestoring
	}
	return m
}

// Bind attaches the remote API. It must be called once, before
// Restore or Login. It is separate from NewManager because the HTTP
// client reads its bearer token from the manager it serves.
func (m *Manager) Bind(backend Backend) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backend = backend
}

// Token implements the API client's token source.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn to run after every settled mutation. The
// callback receives the new snapshot and must not call back into the
// Manager's mutating operations.
func (m *Manager) Subscribe(fn func(Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Restore turns the persisted token into a confirmed identity, or
// discards it. With no token it settles logged out immediately. With
// a token it fetches the profile; any failure has the same effect as
// Logout. Restore never returns an error, and after it returns the
// state is never StateRestoring.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	if m.token == "" {
		m.user = nil
		m.state = StateLoggedOut
		m.settleLocked()
		return
	}
	if m.user != nil {
		// Identity already confirmed; a redundant restore (token just
		// set by a successful login) must not refetch or clobber it.
		m.state = StateLoggedIn
		m.mu.Unlock()
		return
	}

	m.state = StateRestoring
	start := m.epoch
	backend := m.backend
	m.mu.Unlock()

	user, err := backend.FetchCurrentUser(ctx)

	m.mu.Lock()
	if m.epoch != start {
		// Another operation settled while the fetch was in flight;
		// its outcome stands.
		m.mu.Unlock()
		return
	}
	if err != nil {
		m.log.Debug().Err(err).Msg("session restore failed, clearing token")
		m.clearLocked()
	} else {
		m.user = &user
		m.state = StateLoggedIn
	}
	m.settleLocked()
}

// Login authenticates with the backend and, on success, installs the
// returned token and identity and persists the token in the same
// critical section. On failure the session is left untouched and the
// error is returned for the caller to surface. The identity is
// returned so callers can branch on the account class immediately.
func (m *Manager) Login(ctx context.Context, username, password string) (models.User, error) {
	m.mu.Lock()
	backend := m.backend
	m.mu.Unlock()

	resp, err := backend.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	m.token = resp.AccessToken
	user := resp.User
	m.user = &user
	m.state = StateLoggedIn
	if err := m.store.Save(resp.AccessToken); err != nil {
		m.log.Warn().Err(err).Msg("token persist failed; session will not survive restart")
	}
	m.settleLocked()

	return resp.User, nil
}

// Logout clears the session and the persisted token. It is idempotent
// and cannot fail; a store error is logged and the in-memory state is
// cleared regardless.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.clearLocked()
	m.state = StateLoggedOut
	m.settleLocked()
}

// clearLocked erases token and user from memory and the store.
func (m *Manager) clearLocked() {
	m.token = ""
	m.user = nil
	m.state = StateLoggedOut
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("token clear failed")
	}
}

func (m *Manager) snapshotLocked() Session {
	s := Session{Token: m.token, State: m.state}
	if m.user != nil {
		user := *m.user
		s.User = &user
	}
	return s
}

// settleLocked advances the epoch, releases the lock and notifies
// subscribers with the new snapshot.
func (m *Manager) settleLocked() {
	m.epoch++
	snapshot := m.snapshotLocked()
	subs := make([]func(Session), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
