package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkydarmawan/goblog/pkg/helpers"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, exp, err := m.GenerateAccessToken(42, "sid-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestAccessTokenRejectedByRefreshSecret(t *testing.T) {
	m := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, _, err := m.GenerateAccessToken(42, "sid-1")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(token)
	require.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := helpers.NewJWTManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, _, err := m.GenerateAccessToken(42, "sid-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	require.Error(t, err)
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := helpers.HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.True(t, helpers.CompareHashAndPassword(hash, "s3cretpass"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "wrongpass"))
}
