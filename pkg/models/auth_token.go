package models

import (
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/meetsync/meetsync-server/pkg/config"
)

const DefaultSDKRoleType = 1

type AuthTokenModel struct {
	app *config.AppConfig
	// now is wall-clock read at call time, injectable for tests
	now func() time.Time
}

func NewAuthTokenModel(app *config.AppConfig) *AuthTokenModel {
	return &AuthTokenModel{
		app: app,
		now: time.Now,
	}
}

// sdkTokenClaims are the extra claims the provider's client SDK expects
// alongside the registered ones, including an explicit algorithm claim.
type sdkTokenClaims struct {
	Alg          string `json:"alg"`
	AppKey       string `json:"appKey"`
	TokenExp     int64  `json:"tokenExp"`
	SessionName  string `json:"sessionName"`
	UserIdentity string `json:"userIdentity"`
	RoleType     int    `json:"roleType"`
}

// GenerateAPIToken builds the short-lived token for server-to-server
// REST calls against the provider.
func (a *AuthTokenModel) GenerateAPIToken() (string, error) {
	sig, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: []byte(a.app.ZoomInfo.ApiSecret)},
		(&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", err
	}

	cl := &jwt.Claims{
		Issuer: a.app.ZoomInfo.ApiKey,
		Expiry: jwt.NewNumericDate(a.now().Add(*a.app.ZoomInfo.ApiTokenValidity)),
	}
	return jwt.Signed(sig).Claims(cl).Serialize()
}

// GenerateSDKToken builds the session-join token for the provider's
// client SDK. A zero roleType falls back to the participant default.
func (a *AuthTokenModel) GenerateSDKToken(sessionName, userIdentity string, roleType int) (string, error) {
	sig, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: []byte(a.app.ZoomInfo.SdkSecret)},
		(&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", err
	}

	if roleType == 0 {
		roleType = DefaultSDKRoleType
	}

	exp := a.now().Add(*a.app.ZoomInfo.SdkTokenValidity)
	cl := &jwt.Claims{
		Issuer:   a.app.ZoomInfo.SdkKey,
		Audience: jwt.Audience{"zoom"},
		Expiry:   jwt.NewNumericDate(exp),
	}
	c := &sdkTokenClaims{
		Alg:          "HS256",
		AppKey:       a.app.ZoomInfo.SdkKey,
		TokenExp:     exp.Unix(),
		SessionName:  sessionName,
		UserIdentity: userIdentity,
		RoleType:     roleType,
	}
	return jwt.Signed(sig).Claims(cl).Claims(c).Serialize()
}
