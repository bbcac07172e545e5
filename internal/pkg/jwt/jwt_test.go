package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	loginTime := time.Now().Add(-3 * time.Minute)

	token, err := GenerateAccessToken(1, "admin", "ADMIN", loginTime, testSecret, 30)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, loginTime.Unix(), claims.LoginTime)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "ADMIN", time.Now(), testSecret, 30)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other_secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "ADMIN", time.Now(), testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestExtractLoginTime(t *testing.T) {
	loginTime := time.Now().Add(-10 * time.Minute).Truncate(time.Second)

	t.Run("reads expired tokens", func(t *testing.T) {
		token, err := GenerateAccessToken(1, "admin", "ADMIN", loginTime, testSecret, -1)
		require.NoError(t, err)

		got, err := ExtractLoginTime(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, loginTime.Unix(), got.Unix())
	})

	t.Run("still checks the signature", func(t *testing.T) {
		token, err := GenerateAccessToken(1, "admin", "ADMIN", loginTime, testSecret, 30)
		require.NoError(t, err)

		_, err = ExtractLoginTime(token, "other_secret")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(1, "token-id-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "token-id-1", claims.TokenID)
}
