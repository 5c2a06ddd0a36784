package service

import (
	"time"
)

// Claims carries the verified content of a bearer token.
type Claims struct {
	Subject   string    // The identity claim embedded in the token: the user's email.
	ExpiresAt time.Time // Absolute expiry instant of the token.
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited bearer tokens. Tokens are stateless: validity is derived
// purely from signature and expiry at verification time. There is no
// refresh and no revocation; a token remains valid for its full TTL.
type TokenService interface {
	// Issue creates a signed token binding the subject and an absolute
	// expiry instant derived from the given TTL.
	Issue(subject string, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the token's claims.
	// It fails when the signature is invalid, the structure is malformed,
	// or the expiry is in the past. There is no grace window.
	Verify(token string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime for issued access tokens.
	AccessTokenTTL() time.Duration
}
