package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/rentverse/internal/client/api"
	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/client/services"
	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/dmitrijs2005/rentverse/internal/logging"
)

var (
	ErrNotAuthenticated = common.ErrNotAuthenticated
	ErrClosed           = errors.New("session closed")
	ErrNoToken          = errors.New("auth response carries no token")
)

// CredentialStore is the durable side of the session.
type CredentialStore interface {
	GetToken(ctx context.Context) (string, error)
	SaveAuth(ctx context.Context, resp models.AuthResponse) error
	SaveUserData(ctx context.Context, user models.User) error
	ClearAll(ctx context.Context) error
}

type Status int

const (
	StatusChecking Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

type Manager struct {
	api   services.AuthService
	store CredentialStore
	log   logging.Logger

	initOnce  sync.Once
	closeOnce sync.Once
	ready     chan struct{}

	mu      sync.Mutex
	user    *models.User
	checked bool
	closed  bool
	gen     uint64
}

func NewManager(api services.AuthService, store CredentialStore, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		api:   api,
		store: store,
		log:   log.With("component", "session"),
		ready: make(chan struct{}),
	}
}

// Ready is closed once the startup check has finished, whatever its outcome.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case !m.checked:
		return StatusChecking
	case m.user != nil:
		return StatusAuthenticated
	default:
		return StatusUnauthenticated
	}
}

// User returns a copy of the current user, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user.Clone()
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// Close ends the session's lifecycle. Waiters on Ready are released and
// further mutations fail with ErrClosed. Persisted credentials are kept.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()
		m.initOnce.Do(m.markChecked)
	})
	return nil
}

func (m *Manager) markChecked() {
	m.mu.Lock()
	m.checked = true
	m.mu.Unlock()
	close(m.ready)
}

// begin starts a mutation and returns its generation.
func (m *Manager) begin() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}
	m.gen++
	return m.gen, nil
}

// setIfCurrent replaces the user when gen is still the latest generation.
func (m *Manager) setIfCurrent(gen uint64, u *models.User) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return false
	}
	m.user = u.Clone()
	return true
}

// Init runs the startup check once; later calls wait for the first one and
// return. It never fails: problems end in the unauthenticated state.
func (m *Manager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		defer m.markChecked()
		m.check(ctx)
	})
}

func (m *Manager) check(ctx context.Context) {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	token, err := m.store.GetToken(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to read stored token", "error", err)
		m.clearStored(ctx)
		return
	}
	if token == "" {
		m.log.Debug(ctx, "no stored token")
		return
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		if api.IsNotFound(err) {
			m.log.Debug(ctx, "stored session no longer valid")
		} else {
			m.log.Error(ctx, "error checking auth status", "error", err)
		}
		m.clearStored(ctx)
		return
	}

	if !m.setIfCurrent(gen, user) {
		return
	}
	if err := m.store.SaveUserData(ctx, *user); err != nil {
		m.log.Warn(ctx, "failed to cache current user", "error", err)
	}
	m.log.Info(ctx, "session restored", "user_id", user.ID)
}

func (m *Manager) clearStored(ctx context.Context) {
	if err := m.store.ClearAll(context.WithoutCancel(ctx)); err != nil {
		m.log.Error(ctx, "failed to clear stored credentials", "error", err)
	}
}

type loginOptions struct {
	response *models.AuthResponse
}

type LoginOption func(*loginOptions)

// WithResponse supplies a ready AuthResponse; no request is made.
func WithResponse(resp models.AuthResponse) LoginOption {
	return func(o *loginOptions) { o.response = &resp }
}

func collect(opts []LoginOption) loginOptions {
	var o loginOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Login authenticates with creds (or the response given via WithResponse),
// persists the credentials and sets the current user. API errors are
// returned unchanged and leave the session as it was.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials, opts ...LoginOption) (*models.User, error) {
	o := collect(opts)
	if o.response == nil {
		resp, err := m.api.Login(ctx, creds)
		if err != nil {
			return nil, err
		}
		o.response = resp
	}
	return m.establish(ctx, *o.response)
}

// Register is Login against the registration endpoint.
func (m *Manager) Register(ctx context.Context, data models.RegisterData, opts ...LoginOption) (*models.User, error) {
	o := collect(opts)
	if o.response == nil {
		resp, err := m.api.Register(ctx, data)
		if err != nil {
			return nil, err
		}
		o.response = resp
	}
	return m.establish(ctx, *o.response)
}

func (m *Manager) establish(ctx context.Context, resp models.AuthResponse) (*models.User, error) {
	if resp.Token == "" {
		return nil, ErrNoToken
	}
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	if err := m.store.SaveAuth(ctx, resp); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	m.mu.Lock()
	m.gen++
	m.user = resp.User.Clone()
	m.mu.Unlock()

	m.log.Info(ctx, "signed in", "user_id", resp.User.ID)
	return resp.User.Clone(), nil
}

// Logout always ends unauthenticated. A failing remote call is logged only;
// the returned error reports a failure to clear the local store.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "logout request failed", "error", err)
	}

	m.mu.Lock()
	m.gen++
	m.user = nil
	m.mu.Unlock()

	if err := m.store.ClearAll(context.WithoutCancel(ctx)); err != nil {
		m.log.Error(ctx, "failed to clear stored credentials", "error", err)
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	m.log.Info(ctx, "signed out")
	return nil
}

// UpdateProfile applies patch locally at once, sends it to the server and
// then adopts the server's copy of the user.
//
// If the update request fails the previous user is restored in memory and
// in the store and the error is returned unchanged. If only the follow-up
// fetch fails, the optimistic value stays and nil is returned.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	gen, err := m.begin()
	if err != nil {
		return err
	}

	m.mu.Lock()
	original := m.user.Clone()
	var optimistic *models.User
	if original != nil {
		optimistic = merge(original, patch)
		m.user = optimistic.Clone()
	}
	m.mu.Unlock()

	if optimistic != nil {
		if err := m.store.SaveUserData(ctx, *optimistic); err != nil {
			m.rollback(ctx, gen, original)
			return fmt.Errorf("failed to persist profile: %w", err)
		}
	}

	if _, err := m.api.UpdateProfile(ctx, patch); err != nil {
		m.rollback(ctx, gen, original)
		return err
	}

	fetched, err := m.api.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "could not fetch updated user, keeping local update", "error", err)
		return nil
	}

	if !m.setIfCurrent(gen, fetched) {
		m.log.Debug(ctx, "profile update superseded, skipping reconcile")
		return nil
	}
	if err := m.store.SaveUserData(ctx, *fetched); err != nil {
		// the store still holds the optimistic value; keep memory in step
		m.log.Warn(ctx, "failed to persist reconciled user", "error", err)
		if optimistic != nil {
			m.setIfCurrent(gen, optimistic)
		}
	}
	return nil
}

// rollback restores original unless a later mutation has taken over.
func (m *Manager) rollback(ctx context.Context, gen uint64, original *models.User) {
	if original == nil {
		return
	}
	if !m.setIfCurrent(gen, original) {
		m.log.Debug(ctx, "profile update superseded, skipping rollback")
		return
	}
	if err := m.store.SaveUserData(context.WithoutCancel(ctx), *original); err != nil {
		m.log.Error(ctx, "failed to persist rollback", "error", err)
	}
}

// UpdateUser merges patch into the current user and persists it without
// contacting the server. It does nothing when no user is signed in.
func (m *Manager) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}
	m.gen++
	m.user = merge(m.user, patch)
	updated := *m.user.Clone()
	m.mu.Unlock()

	if err := m.store.SaveUserData(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

// UploadAvatar uploads an image and records the returned URL locally.
func (m *Manager) UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error) {
	if !m.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	avatarURL, err := m.api.UploadAvatar(ctx, filename, r)
	if err != nil {
		return "", err
	}
	if err := m.UpdateUser(ctx, models.UserPatch{Avatar: &avatarURL}); err != nil {
		return "", err
	}
	return avatarURL, nil
}

func merge(u *models.User, p models.UserPatch) *models.User {
	merged := u.Apply(p)
	return merged.Clone()
}
