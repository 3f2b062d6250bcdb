package auth

import "time"

// AuthURLRequest asks for the provider consent URL.
type AuthURLRequest struct {
	State string `json:"state"`
}

// AuthURLResponse carries the provider consent URL.
type AuthURLResponse struct {
	URL string `json:"url"`
}

// SignInRequest completes a provider callback.
type SignInRequest struct {
	Code string `json:"code"`
}

// SignInResponse carries the minted session token and signed-in user.
type SignInResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	TokenType   string    `json:"token_type"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidateTokenRequest asks whether a session token is valid.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse reports the session a valid token proves.
type ValidateTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Error  string `json:"error,omitempty"`
}

// GetUserRequest asks for a user by ID.
type GetUserRequest struct {
	UserID string `json:"user_id"`
}

// GetUserResponse carries a user.
type GetUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SignOutRequest ends a session.
type SignOutRequest struct {
	Token string `json:"token"`
}

// SignOutResponse acknowledges a sign-out.
type SignOutResponse struct {
	SignedOut bool `json:"signed_out"`
}
