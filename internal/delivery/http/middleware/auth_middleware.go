// Package middleware contains echo middleware for the HTTP delivery.
package middleware

import (
	"log/slog"
	"strings"

	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyCurrentUser is the echo context key carrying the resolved identity.
const ContextKeyCurrentUser = "currentUser"

// AuthMiddleware is the request-scoped identity resolver: it verifies the
// bearer token and loads the authenticated user for downstream handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate validates the bearer token and resolves the caller's user
// record. Every failure mode (missing header, malformed header, bad
// signature, expired token, unknown subject) surfaces the same error so a
// caller cannot distinguish a bad token from a token for a deleted user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrInvalidToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), claims.Subject)
		if err != nil {
			// A verified token whose subject no longer exists fails exactly
			// like an invalid token.
			return domainerrors.ErrInvalidToken
		}

		c.Set(ContextKeyCurrentUser, user)

		return next(c)
	}
}
