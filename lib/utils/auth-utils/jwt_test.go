package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"jobboard-backend/config"
	"jobboard-backend/models"
)

func initTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func TestJWT(t *testing.T) {
	initTestConfig()

	t.Run(`refresh token round trip`, func(t *testing.T) {
		token, err := GetRefreshToken("user-1")
		require.Nil(t, err)
		userID, err := ParseRefreshToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", userID)
	})

	t.Run(`access token is not accepted as refresh`, func(t *testing.T) {
		token, err := GetToken("user-1", "Jane", "jane@example.com", models.CandidateRole)
		require.Nil(t, err)
		_, err = ParseRefreshToken(token)
		require.NotNil(t, err)
	})

	t.Run(`foreign signature is rejected`, func(t *testing.T) {
		token, err := GetRefreshToken("user-1")
		require.Nil(t, err)
		config.Conf.Auth.JWTSecret = "other-secret"
		defer func() { config.Conf.Auth.JWTSecret = "test-secret" }()
		_, err = ParseRefreshToken(token)
		require.NotNil(t, err)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.Nil(t, err)
	require.NotEqual(t, "s3cret-pass", hash)
	require.True(t, CheckPassword(hash, "s3cret-pass"))
	require.False(t, CheckPassword(hash, "wrong"))
}
