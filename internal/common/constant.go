// Package common contains shared constants, sentinel errors and small helpers
// used across rentverse components.
package common

// Header names attached to every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	UserAgentHeaderName     = "User-Agent"
)

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// Keys of the local credential store.
const (
	KeyAccessToken  = "auth_token"
	KeyRefreshToken = "refresh_token"
	KeyUserData     = "user_data"
	KeySealSalt     = "seal_salt"
)
