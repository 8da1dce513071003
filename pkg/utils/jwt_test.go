package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "solarpower")

	token, err := m.GenerateSessionToken(42, "admin")
	require.NoError(t, err)

	claims, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.StaffID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "solarpower", claims.Issuer)
}

func TestSessionTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour, "solarpower").GenerateSessionToken(1, "admin")
	require.NoError(t, err)

	_, err = NewJWTManager("another", time.Hour, "solarpower").ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenExpires(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, "solarpower")

	token, err := m.GenerateSessionToken(1, "admin")
	require.NoError(t, err)

	_, err = m.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
