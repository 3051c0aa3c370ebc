// Package api defines the request/response types of the public HTTP API.
package api

// RegisterRequest is the payload for registering a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// LoginRequest is the payload for authenticating a user
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the access token issued at login
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // access token lifetime in seconds
}

// ErrorResponse is the error envelope used by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`             // HTTP status text
	Message string `json:"message,omitempty"` // human-readable detail
}
