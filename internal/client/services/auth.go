package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

// AuthService covers the /auth endpoints.
//
// Contract:
//   - Login / Register: exchange credentials for an AuthResponse; sent without
//     a bearer token.
//   - Me: fetch the current user.
//   - Logout: invalidate the session server-side.
//   - UpdateProfile: PUT the partial user.
//   - UploadAvatar: multipart upload, returns the new avatar URL.
type AuthService interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)
	UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error)
}

const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathMe       = "/auth/me"
	pathLogout   = "/auth/logout"
	pathProfile  = "/auth/profile"
	pathAvatar   = "/auth/avatar"

	avatarField = "avatar"
)

type authService struct {
	api Requester
}

func NewAuthService(api Requester) AuthService {
	return &authService{api: api}
}

func (s *authService) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.PostAnonymous(ctx, pathLogin, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.PostAnonymous(ctx, pathRegister, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.api.Get(ctx, pathMe, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.api.Post(ctx, pathLogout, nil, nil)
}

// UpdateProfile returns the body of the response, which may be empty; the
// session does not rely on it and refetches the user instead.
func (s *authService) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	var u models.User
	if err := s.api.Put(ctx, pathProfile, patch, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *authService) UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error) {
	var resp models.AvatarResponse
	if err := s.api.Upload(ctx, pathAvatar, avatarField, filename, r, &resp); err != nil {
		return "", err
	}
	return resp.AvatarURL, nil
}
