package models

import (
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenTestConfig() *config.AppConfig {
	apiValidity := time.Hour
	sdkValidity := time.Hour * 2

	app := &config.AppConfig{}
	app.ZoomInfo = config.ZoomInfo{
		ApiKey:           "api-key",
		ApiSecret:        "api-secret-0123456789-0123456789",
		SdkKey:           "sdk-key",
		SdkSecret:        "sdk-secret-0123456789-0123456789",
		ApiTokenValidity: &apiValidity,
		SdkTokenValidity: &sdkValidity,
	}
	return app
}

func TestAuthTokenModel_GenerateAPIToken(t *testing.T) {
	now := time.Date(2026, 5, 11, 10, 0, 0, 0, time.UTC)
	m := NewAuthTokenModel(newTokenTestConfig())
	m.now = func() time.Time { return now }

	token, err := m.GenerateAPIToken()
	require.NoError(t, err)

	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	require.NoError(t, err)

	cl := jwt.Claims{}
	require.NoError(t, parsed.Claims([]byte("api-secret-0123456789-0123456789"), &cl))
	assert.Equal(t, "api-key", cl.Issuer)
	assert.Equal(t, now.Add(time.Hour).Unix(), cl.Expiry.Time().Unix())
}

func TestAuthTokenModel_GenerateSDKToken(t *testing.T) {
	now := time.Date(2026, 5, 11, 10, 0, 0, 0, time.UTC)
	m := NewAuthTokenModel(newTokenTestConfig())
	m.now = func() time.Time { return now }

	token, err := m.GenerateSDKToken("standup", "alice", 0)
	require.NoError(t, err)

	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	require.NoError(t, err)

	cl := jwt.Claims{}
	custom := sdkTokenClaims{}
	require.NoError(t, parsed.Claims([]byte("sdk-secret-0123456789-0123456789"), &cl, &custom))

	assert.Equal(t, "sdk-key", cl.Issuer)
	assert.Equal(t, jwt.Audience{"zoom"}, cl.Audience)
	assert.Equal(t, now.Add(time.Hour*2).Unix(), cl.Expiry.Time().Unix())

	assert.Equal(t, "HS256", custom.Alg)
	assert.Equal(t, "sdk-key", custom.AppKey)
	assert.Equal(t, "standup", custom.SessionName)
	assert.Equal(t, "alice", custom.UserIdentity)
	// zero roleType falls back to the participant default
	assert.Equal(t, DefaultSDKRoleType, custom.RoleType)
	assert.Equal(t, now.Add(time.Hour*2).Unix(), custom.TokenExp)
}

func TestAuthTokenModel_GenerateSDKToken_ExplicitRole(t *testing.T) {
	m := NewAuthTokenModel(newTokenTestConfig())

	token, err := m.GenerateSDKToken("standup", "bob", 2)
	require.NoError(t, err)

	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	require.NoError(t, err)

	custom := sdkTokenClaims{}
	require.NoError(t, parsed.Claims([]byte("sdk-secret-0123456789-0123456789"), &custom))
	assert.Equal(t, 2, custom.RoleType)
}
