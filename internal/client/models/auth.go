package models

// LoginCredentials is the body of POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCredentials) Validate() error {
	if !ValidEmail(c.Email) {
		return validationError("invalid email")
	}
	if !Required(c.Password) {
		return validationError("password is required")
	}
	return nil
}

// RegisterData is the body of POST /auth/register.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

func (d RegisterData) Validate() error {
	if !Required(d.Name) {
		return validationError("name is required")
	}
	if !ValidEmail(d.Email) {
		return validationError("invalid email")
	}
	if !ValidPassword(d.Password) {
		return validationError("password must be at least %d characters", MinPasswordLength)
	}
	if d.Phone != "" && !ValidPhone(d.Phone) {
		return validationError("invalid phone number")
	}
	return nil
}

// AuthResponse is returned by login, register and token refresh.
// RefreshToken is optional.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         User   `json:"user"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AvatarResponse is returned by POST /auth/avatar.
type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
