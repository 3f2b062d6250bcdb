package auth

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/taskboard/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthPort defines the interface other modules use to reach the identity
// services.
type AuthPort interface {
	AuthCodeURL(ctx context.Context, state string) (string, error)
	SignIn(ctx context.Context, code string) (*SignInResponse, error)
	ValidateToken(ctx context.Context, token string) (*domain.Session, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	SignOut(ctx context.Context, token string) error
}

// AuthAdapter implements AuthPort using the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{container: container}
}

// AuthCodeURL returns the provider consent URL for the given state.
func (a *AuthAdapter) AuthCodeURL(ctx context.Context, state string) (string, error) {
	req := AuthURLRequest{State: state}
	var resp AuthURLResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "auth-url", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return "", fmt.Errorf("auth-url request failed: %w", err)
	}
	return resp.URL, nil
}

// SignIn completes a provider callback and returns the session token.
func (a *AuthAdapter) SignIn(ctx context.Context, code string) (*SignInResponse, error) {
	req := SignInRequest{Code: code}
	var resp SignInResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "sign-in", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	return &resp, nil
}

// ValidateToken validates a session token and returns the session.
func (a *AuthAdapter) ValidateToken(ctx context.Context, token string) (*domain.Session, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate-token", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("validate-token request failed: %w", err)
	}

	if !resp.Valid {
		return nil, fmt.Errorf("token validation failed: %s", resp.Error)
	}

	return &domain.Session{
		UserID: resp.UserID,
		Name:   resp.Name,
	}, nil
}

// GetUser retrieves a user by ID.
func (a *AuthAdapter) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-user request failed: %w", err)
	}

	return &domain.User{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// SignOut ends a session.
func (a *AuthAdapter) SignOut(ctx context.Context, token string) error {
	req := SignOutRequest{Token: token}
	var resp SignOutResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "sign-out", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("sign-out request failed: %w", err)
	}
	return nil
}
