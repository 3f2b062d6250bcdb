package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	domain "github.com/example/taskboard/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AuthModule provides the identity services: provider sign-in, session token
// validation, and user lookup.
type AuthModule struct {
	db       *gorm.DB
	service  *AuthService
	provider Provider
	dbPath   string
}

// Compile-time interface checks.
var _ mono.Module = (*AuthModule)(nil)
var _ mono.ServiceProviderModule = (*AuthModule)(nil)
var _ mono.HealthCheckableModule = (*AuthModule)(nil)

// NewModule creates a new AuthModule storing users in the given SQLite file.
// The file is shared with the todo module so task ownership references hold.
func NewModule(dbPath string, provider Provider) *AuthModule {
	return &AuthModule{
		dbPath:   dbPath,
		provider: provider,
	}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Start opens the database, runs migrations, and assembles the service.
func (m *AuthModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewUserRepository(db)
	jwtManager := NewJWTManager(LoadJWTConfig())
	m.service = NewAuthService(repo, m.provider, jwtManager)

	log.Printf("[auth] Module started (provider: %s, database: %s)", m.provider.Name(), m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *AuthModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[auth] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AuthModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"provider": m.provider.Name(),
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "auth-url", json.Unmarshal, json.Marshal, m.handleAuthURL,
	); err != nil {
		return fmt.Errorf("failed to register auth-url service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "sign-in", json.Unmarshal, json.Marshal, m.handleSignIn,
	); err != nil {
		return fmt.Errorf("failed to register sign-in service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-token", json.Unmarshal, json.Marshal, m.handleValidateToken,
	); err != nil {
		return fmt.Errorf("failed to register validate-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.handleGetUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "sign-out", json.Unmarshal, json.Marshal, m.handleSignOut,
	); err != nil {
		return fmt.Errorf("failed to register sign-out service: %w", err)
	}

	log.Printf("[auth] Registered services: auth-url, sign-in, validate-token, get-user, sign-out")
	return nil
}

// handleAuthURL returns the provider consent URL.
func (m *AuthModule) handleAuthURL(_ context.Context, req AuthURLRequest, _ *mono.Msg) (AuthURLResponse, error) {
	return AuthURLResponse{URL: m.service.AuthCodeURL(req.State)}, nil
}

// handleSignIn completes the OAuth callback.
func (m *AuthModule) handleSignIn(ctx context.Context, req SignInRequest, _ *mono.Msg) (SignInResponse, error) {
	result, err := m.service.SignIn(ctx, req.Code)
	if err != nil {
		return SignInResponse{}, err
	}

	return SignInResponse{
		AccessToken: result.Token,
		ExpiresIn:   result.ExpiresIn,
		TokenType:   result.TokenType,
		UserID:      result.User.ID,
		Name:        result.User.Name,
		Email:       result.User.Email,
		CreatedAt:   result.User.CreatedAt,
	}, nil
}

// handleValidateToken validates a session token. Validation failures are part
// of the response, not errors.
func (m *AuthModule) handleValidateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	session, err := m.service.ValidateToken(ctx, req.Token)
	if err != nil {
		errMsg := "invalid token"
		if errors.Is(err, ErrExpiredToken) {
			errMsg = "token expired"
		}
		return ValidateTokenResponse{Valid: false, Error: errMsg}, nil
	}

	return ValidateTokenResponse{
		Valid:  true,
		UserID: session.UserID,
		Name:   session.Name,
	}, nil
}

// handleGetUser returns a user by ID.
func (m *AuthModule) handleGetUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (GetUserResponse, error) {
	user, err := m.service.GetUser(ctx, req.UserID)
	if err != nil {
		return GetUserResponse{}, err
	}

	return GetUserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// handleSignOut acknowledges a sign-out.
func (m *AuthModule) handleSignOut(ctx context.Context, req SignOutRequest, _ *mono.Msg) (SignOutResponse, error) {
	if err := m.service.SignOut(ctx, req.Token); err != nil {
		return SignOutResponse{SignedOut: false}, err
	}
	return SignOutResponse{SignedOut: true}, nil
}
