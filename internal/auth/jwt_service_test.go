package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256", time.Hour)

	token, err := svc.GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)

	userID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256", -time.Minute)

	token, err := svc.GenerateToken(42)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "HS256", time.Hour)
	verifier := NewJWTService("secret-b", "HS256", time.Hour)

	token, err := issuer.GenerateToken(42)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestSigningMethodSelection(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512", "unknown"} {
		svc := NewJWTService("test-secret", alg, time.Hour)

		token, err := svc.GenerateToken(7)
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.NoError(t, err)

		userID, err := claims.UserID()
		assert.NoError(t, err)
		assert.Equal(t, uint(7), userID)
	}
}
