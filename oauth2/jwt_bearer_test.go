package oauth2

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/rmorlok/credagent/cactx"
	"github.com/rmorlok/credagent/config"
	httpf_mock "github.com/rmorlok/credagent/httpf/mock"
	cajwt "github.com/rmorlok/credagent/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"
)

func TestJwtBearerTokenSource(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := cactx.WithFixedClock(context.Background(), now)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	auth := &config.CredentialAuthJwtBearer{
		Type:          config.CredentialAuthTypeJwtBearer,
		TokenEndpoint: "https://auth.example.com/token",
		Issuer:        "svc@example.iam",
		Key: &config.KeyDataHolder{
			InnerVal: &config.KeyDataValue{Value: string(keyPEM)},
		},
		Scopes: []config.Scope{{Id: "read"}},
	}

	newSource := func(t *testing.T) TokenSource {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		return newJwtBearerTokenSource("example", auth, httpf_mock.NewFactoryWithMockingClient(ctrl))
	}

	t.Run("exchanges a signed assertion", func(t *testing.T) {
		defer gock.Off()

		var form url.Values
		captureForm(gock.New("https://auth.example.com").Post("/token"), &form).
			Reply(200).
			JSON(map[string]interface{}{
				"access_token": "minted-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})

		token, err := newSource(t).Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minted-token", token.AccessToken)

		assert.Equal(t, jwtBearerGrantType, form.Get("grant_type"))

		var claims cajwt.AssertionClaims
		_, err = jwt.ParseWithClaims(form.Get("assertion"), &claims, func(token *jwt.Token) (interface{}, error) {
			return &key.PublicKey, nil
		}, jwt.WithTimeFunc(func() time.Time { return now }))
		require.NoError(t, err)

		assert.Equal(t, "svc@example.iam", claims.Issuer)
		assert.Equal(t, "svc@example.iam", claims.Subject)
		assert.Equal(t, cajwt.ClaimString("https://auth.example.com/token"), claims.Audience)
		assert.Equal(t, "read", claims.Scope)
		assert.Equal(t, now.Add(5*time.Minute), claims.ExpiresAt.Time)
	})

	t.Run("endpoint failure", func(t *testing.T) {
		defer gock.Off()

		gock.New("https://auth.example.com").
			Post("/token").
			Reply(403).
			BodyString(`{"error": "access_denied"}`)

		_, err := newSource(t).Token(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("unsignable key fails before the endpoint is called", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		badAuth := &config.CredentialAuthJwtBearer{
			Type:          config.CredentialAuthTypeJwtBearer,
			TokenEndpoint: "https://auth.example.com/token",
			Issuer:        "svc@example.iam",
			Key: &config.KeyDataHolder{
				InnerVal: &config.KeyDataValue{Value: "not a pem"},
			},
		}

		s := newJwtBearerTokenSource("example", badAuth, httpf_mock.NewFactoryWithMockingClient(ctrl))

		_, err := s.Token(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to sign assertion")
	})
}
