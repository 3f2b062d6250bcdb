package auth

import (
	"context"
	"fmt"

	domain "github.com/example/taskboard/domain/user"
)

// SignInResult is the outcome of a completed sign-in.
type SignInResult struct {
	Token     string
	ExpiresIn int64
	TokenType string
	User      *domain.User
}

// AuthService handles the identity flow: provider exchange, user upsert, and
// session token issuance.
type AuthService struct {
	repo     *UserRepository
	provider Provider
	jwt      *JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *UserRepository, provider Provider, jwt *JWTManager) *AuthService {
	return &AuthService{
		repo:     repo,
		provider: provider,
		jwt:      jwt,
	}
}

// AuthCodeURL returns the provider consent URL for the given state.
func (s *AuthService) AuthCodeURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// SignIn completes the OAuth flow for a callback code: resolves the provider
// identity, upserts the user row, and mints a session token.
func (s *AuthService) SignIn(ctx context.Context, code string) (*SignInResult, error) {
	profile, err := s.provider.Identity(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("provider sign-in failed: %w", err)
	}

	user, err := s.repo.Upsert(s.provider.Name(), profile.AccountID(), profile.Name, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &SignInResult{
		Token:     token,
		ExpiresIn: s.jwt.SessionDuration(),
		TokenType: "Bearer",
		User:      user,
	}, nil
}

// ValidateToken validates a session token and returns the session it proves.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*domain.Session, error) {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		UserID: claims.UserID,
		Name:   claims.Name,
	}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(_ context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(userID)
}

// SignOut ends a session. Session tokens are stateless, so the server holds
// nothing to invalidate; the client discards the token.
func (s *AuthService) SignOut(_ context.Context, _ string) error {
	return nil
}
