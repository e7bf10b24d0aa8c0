package common

import "errors"

var (
	// Session-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Validation errors for user supplied data.
	ErrValidation = errors.New("validation error")

	// Token refresh errors.
	ErrRefreshFailed = errors.New("token refresh failed")
)
