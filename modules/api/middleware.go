package api

import (
	"strings"

	"github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/modules/auth"
	"github.com/gofiber/fiber/v2"
)

// SessionContextKey is the key used to store the session in the Fiber context.
const SessionContextKey = "session"

// bearerToken extracts the bearer token from the Authorization header.
// Returns the empty string when the header is absent or malformed.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// OptionalAuth resolves the session when a valid bearer token is present and
// passes through otherwise. Procedures gate themselves; this middleware only
// translates the token into a session.
func OptionalAuth(authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if session, err := authPort.ValidateToken(c.UserContext(), token); err == nil {
				c.Locals(SessionContextKey, session)
			}
		}
		return c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Authorization header is required. Use: Bearer <token>",
			})
		}

		session, err := authPort.ValidateToken(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
		}

		c.Locals(SessionContextKey, session)
		return c.Next()
	}
}

// sessionFromCtx returns the session resolved by the middleware, or nil.
func sessionFromCtx(c *fiber.Ctx) *user.Session {
	session, _ := c.Locals(SessionContextKey).(*user.Session)
	return session
}
