package utils

import (
	"testing"
	"time"

	"vetbuddy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("c1", "clinic", time.Hour)
	require.NoError(t, err)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "c1", claims.Subject)
	assert.Equal(t, "clinic", claims.Role)
}

func TestExtractClaims_Rejects(t *testing.T) {
	expired, err := GenerateToken("c1", "clinic", -time.Minute)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":   expired,
		"malformed": "abc.def",
		"tampered":  expired[:len(expired)-2] + "xx",
	} {
		_, err := ExtractClaims(token)
		assert.Error(t, err, name)
	}
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("a"), HashToken("a"))
	assert.NotEqual(t, HashToken("a"), HashToken("b"))
	assert.Len(t, HashToken("a"), 64)
}

func TestSecretKey_NoDevFallbackInProduction(t *testing.T) {
	saved := config.AppConfig
	t.Cleanup(func() { config.AppConfig = saved })
	t.Setenv("JWT_SECRET", "")

	config.AppConfig = config.Config{Env: "development"}
	key, err := secretKey()
	require.NoError(t, err)
	assert.Equal(t, []byte(devSecret), key)

	config.AppConfig = config.Config{Env: "production"}
	_, err = GenerateToken("c1", "clinic", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	config.AppConfig = config.Config{Env: "production", JWTSecret: "s3cret"}
	token, err := GenerateToken("c1", "clinic", time.Hour)
	require.NoError(t, err)
	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "c1", claims.Subject)
}
