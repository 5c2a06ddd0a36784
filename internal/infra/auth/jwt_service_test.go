package auth

import (
	"strings"
	"testing"
	"time"

	"taskboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		SecretKey:      secret,
		AccessTokenTTL: ttl,
	}

	return cfg
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com", 30*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	// Already-past expiry fails immediately; no grace window.
	token, err := svc.Issue("a@b.com", -time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ZeroTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com", 0)
	require.NoError(t, err)

	// The expiry instant equals issuance; by verification time it has elapsed.
	time.Sleep(10 * time.Millisecond)
	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com", 30*time.Minute)
	require.NoError(t, err)

	// Flip a single byte of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	token, err := issuer.Issue("a@b.com", 30*time.Minute)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", 30*time.Minute))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 45*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, svc.AccessTokenTTL())

	// Missing TTL falls back to the 30-minute default.
	svc, err = NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenTTL())
}
