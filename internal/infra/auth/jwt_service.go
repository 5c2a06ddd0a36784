// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"taskboard/config"
	"taskboard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Process-wide symmetric signing secret.
	accessTTL time.Duration // Time-to-live for issued access tokens.
}

// NewJWTService is the constructor for jwtService. The signing secret is
// required external configuration; construction fails when it is missing so
// a secret can never be silently defaulted.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := cfg.Auth.AccessTokenTTL
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}

	return &jwtService{
		secret:    cfg.Auth.SecretKey,
		accessTTL: accessTTL,
	}, nil
}

// Issue creates a signed HS256 token binding the subject and the absolute
// expiry instant derived from ttl.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and extracts its claims.
// Expiry is checked against the current time with no grace window.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Reject any signing method other than the expected HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	return &service.Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// AccessTokenTTL returns the configured lifetime for issued access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
