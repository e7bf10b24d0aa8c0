package session

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

// fakeAuth is a scripted services.AuthService; unset funcs fail the call.
type fakeAuth struct {
	mu    sync.Mutex
	calls []string

	login         func(models.LoginCredentials) (*models.AuthResponse, error)
	register      func(models.RegisterData) (*models.AuthResponse, error)
	me            func() (*models.User, error)
	logout        func() error
	updateProfile func(context.Context, models.UserPatch) (*models.User, error)
	uploadAvatar  func(string, io.Reader) (string, error)
}

var errUnscripted = errors.New("unscripted call")

func (f *fakeAuth) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAuth) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAuth) Login(_ context.Context, c models.LoginCredentials) (*models.AuthResponse, error) {
	f.record("login")
	if f.login == nil {
		return nil, errUnscripted
	}
	return f.login(c)
}

func (f *fakeAuth) Register(_ context.Context, d models.RegisterData) (*models.AuthResponse, error) {
	f.record("register")
	if f.register == nil {
		return nil, errUnscripted
	}
	return f.register(d)
}

func (f *fakeAuth) Me(context.Context) (*models.User, error) {
	f.record("me")
	if f.me == nil {
		return nil, errUnscripted
	}
	return f.me()
}

func (f *fakeAuth) Logout(context.Context) error {
	f.record("logout")
	if f.logout == nil {
		return errUnscripted
	}
	return f.logout()
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, p models.UserPatch) (*models.User, error) {
	f.record("updateProfile")
	if f.updateProfile == nil {
		return nil, errUnscripted
	}
	return f.updateProfile(ctx, p)
}

func (f *fakeAuth) UploadAvatar(_ context.Context, name string, r io.Reader) (string, error) {
	f.record("uploadAvatar")
	if f.uploadAvatar == nil {
		return "", errUnscripted
	}
	return f.uploadAvatar(name, r)
}

// fakeStore is an in-memory CredentialStore. saveUserErrs is consumed one
// entry per SaveUserData call; a nil entry means success.
type fakeStore struct {
	mu           sync.Mutex
	token        string
	refresh      string
	user         *models.User
	getErr       error
	saveAuthErr  error
	clearErr     error
	saveUserErrs []error
	clears       int
}

func (s *fakeStore) GetToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.getErr
}

func (s *fakeStore) SaveAuth(_ context.Context, r models.AuthResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveAuthErr != nil {
		return s.saveAuthErr
	}
	s.token, s.refresh = r.Token, r.RefreshToken
	s.user = r.User.Clone()
	return nil
}

func (s *fakeStore) SaveUserData(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saveUserErrs) > 0 {
		err := s.saveUserErrs[0]
		s.saveUserErrs = s.saveUserErrs[1:]
		if err != nil {
			return err
		}
	}
	s.user = u.Clone()
	return nil
}

func (s *fakeStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.token, s.refresh, s.user = "", "", nil
	return nil
}

func (s *fakeStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}
