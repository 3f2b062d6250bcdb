package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/modules/auth"
	"github.com/gofiber/fiber/v2"
)

// mockAuthPort implements auth.AuthPort for testing.
type mockAuthPort struct {
	authCodeURLFunc   func(ctx context.Context, state string) (string, error)
	signInFunc        func(ctx context.Context, code string) (*auth.SignInResponse, error)
	validateTokenFunc func(ctx context.Context, token string) (*domain.Session, error)
	getUserFunc       func(ctx context.Context, userID string) (*domain.User, error)
	signOutFunc       func(ctx context.Context, token string) error
}

func (m *mockAuthPort) AuthCodeURL(ctx context.Context, state string) (string, error) {
	if m.authCodeURLFunc != nil {
		return m.authCodeURLFunc(ctx, state)
	}
	return "", errors.New("not implemented")
}

func (m *mockAuthPort) SignIn(ctx context.Context, code string) (*auth.SignInResponse, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, code)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthPort) ValidateToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthPort) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthPort) SignOut(ctx context.Context, token string) error {
	if m.signOutFunc != nil {
		return m.signOutFunc(ctx, token)
	}
	return errors.New("not implemented")
}

func validatingAuthPort(validToken, userID string) *mockAuthPort {
	return &mockAuthPort{
		validateTokenFunc: func(_ context.Context, token string) (*domain.Session, error) {
			if token == validToken {
				return &domain.Session{UserID: userID, Name: "Test User"}, nil
			}
			return nil, errors.New("invalid token")
		},
	}
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authorization header is required",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic token123",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authorization header is required",
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer wrong-token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			expectedStatus: http.StatusOK,
			expectedBody:   "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(RequireAuth(validatingAuthPort("valid-token", "user-123")))
			app.Get("/test", func(c *fiber.Ctx) error {
				return c.SendString(sessionFromCtx(c).UserID)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.expectedBody) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedBody, string(body))
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		expectedBody string
	}{
		{"no header passes through", "", "anonymous"},
		{"invalid token passes through", "Bearer wrong-token", "anonymous"},
		{"valid token resolves session", "Bearer valid-token", "user-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(OptionalAuth(validatingAuthPort("valid-token", "user-123")))
			app.Get("/test", func(c *fiber.Ctx) error {
				if session := sessionFromCtx(c); session != nil {
					return c.SendString(session.UserID)
				}
				return c.SendString("anonymous")
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, string(body))
			}
		})
	}
}
