package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken_ClaimsRoundTrip(t *testing.T) {
	const secret = "test-secret"

	at, err := NewAccessToken(secret, 42, 15)
	require.NoError(t, err)
	require.NotEmpty(t, at.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), at.Exp, 5*time.Second)

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.NotZero(t, claims["exp"])
	assert.NotZero(t, claims["iat"])
}

func TestNewAccessToken_RejectsWrongSecret(t *testing.T) {
	at, err := NewAccessToken("secret-a", 1, 5)
	require.NoError(t, err)

	_, err = jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	assert.Error(t, err)
}

func TestNewRefreshToken(t *testing.T) {
	rt, err := NewRefreshToken(30)
	require.NoError(t, err)

	// 48 random bytes hex encoded.
	assert.Len(t, rt.Raw, 96)
	assert.WithinDuration(t, time.Now().UTC().Add(30*24*time.Hour), rt.Exp, 5*time.Second)

	other, err := NewRefreshToken(30)
	require.NoError(t, err)
	assert.NotEqual(t, rt.Raw, other.Raw)
}

func TestHashRefreshRaw_Deterministic(t *testing.T) {
	h1 := HashRefreshRaw("token-value")
	h2 := HashRefreshRaw("token-value")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // sha256 hex
	assert.NotEqual(t, h1, HashRefreshRaw("other-value"))
}
