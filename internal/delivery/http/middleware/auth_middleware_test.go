package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo, logger),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func invokeAuth(t *testing.T, fx authMiddlewareFixtures, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 1, Email: "test@example.com"}

	fx.tokenSvc.EXPECT().
		Verify("good.token").
		Return(&service.Claims{Subject: user.Email}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, user.Email).
		Return(user, nil)

	c, err := invokeAuth(t, fx, "Bearer good.token")

	require.NoError(t, err)
	resolved, ok := c.Get(ContextKeyCurrentUser).(*entity.User)
	require.True(t, ok)
	assert.Equal(t, user, resolved)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	_, err := invokeAuth(t, fx, "")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	_, err := invokeAuth(t, fx, "Basic dXNlcjpwYXNz")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		Verify("bad.token").
		Return(nil, errors.New("signature is invalid"))

	_, err := invokeAuth(t, fx, "Bearer bad.token")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_UnknownSubject(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		Verify("orphan.token").
		Return(&service.Claims{Subject: "gone@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	// A verified token for a deleted user fails the same way as a bad token.
	_, err := invokeAuth(t, fx, "Bearer orphan.token")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
