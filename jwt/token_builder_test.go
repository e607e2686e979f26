package jwt

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/rmorlok/credagent/cactx"
	"github.com/rmorlok/credagent/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRSAKeyPEM(t *testing.T) ([]byte, *rsa.PublicKey) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	return keyPEM, &key.PublicKey
}

func TestTokenBuilder(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := cactx.WithFixedClock(context.Background(), now)

	keyPEM, publicKey := testRSAKeyPEM(t)

	parse := func(t *testing.T, tokenString string) *AssertionClaims {
		var claims AssertionClaims
		_, err := gojwt.ParseWithClaims(tokenString, &claims, func(token *gojwt.Token) (interface{}, error) {
			return publicKey, nil
		}, gojwt.WithTimeFunc(func() time.Time { return now }))
		require.NoError(t, err)
		return &claims
	}

	builder := func() ClaimsBuilder {
		return NewClaimsBuilder().
			WithIssuer("svc@example.iam").
			WithAudience("https://oauth2.example.com/token").
			WithScopeIds([]string{"scope-a"}).
			WithExpiresInCtx(ctx, 5*time.Minute)
	}

	t.Run("signs with key data", func(t *testing.T) {
		tokenString, err := NewTokenBuilder().
			WithClaimsBuilder(builder()).
			WithPrivateKey(keyPEM).
			TokenCtx(ctx)

		require.NoError(t, err)

		claims := parse(t, tokenString)
		assert.Equal(t, "svc@example.iam", claims.Issuer)
		assert.Equal(t, "scope-a", claims.Scope)
	})

	t.Run("signs with key path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.pem")
		require.NoError(t, os.WriteFile(path, keyPEM, 0600))

		tokenString, err := NewTokenBuilder().
			WithClaimsBuilder(builder()).
			WithPrivateKeyPath(path).
			TokenCtx(ctx)

		require.NoError(t, err)
		parse(t, tokenString)
	})

	t.Run("signs with config key data", func(t *testing.T) {
		tokenString, err := NewTokenBuilder().
			WithClaimsBuilder(builder()).
			WithConfigKey(ctx, &config.KeyDataValue{Value: string(keyPEM)}).
			TokenCtx(ctx)

		require.NoError(t, err)
		parse(t, tokenString)
	})

	t.Run("signs explicit claims", func(t *testing.T) {
		claims := builder().MustBuildCtx(ctx)

		tokenString, err := NewTokenBuilder().
			WithClaims(&claims).
			WithPrivateKey(keyPEM).
			TokenCtx(ctx)

		require.NoError(t, err)
		parsed := parse(t, tokenString)
		assert.Equal(t, claims.ID, parsed.ID)
	})

	t.Run("key material is required", func(t *testing.T) {
		_, err := NewTokenBuilder().
			WithClaimsBuilder(builder()).
			TokenCtx(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "key material must be specified")
	})

	t.Run("cannot specify key data and path", func(t *testing.T) {
		_, err := NewTokenBuilder().
			WithClaimsBuilder(builder()).
			WithPrivateKey(keyPEM).
			WithPrivateKeyPath("/tmp/does-not-matter.pem").
			TokenCtx(ctx)

		require.Error(t, err)
	})

	t.Run("claims are required", func(t *testing.T) {
		_, err := NewTokenBuilder().
			WithPrivateKey(keyPEM).
			TokenCtx(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "claims must be specified")
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := NewTokenBuilder().
			WithClaimsBuilder(builder()).
			WithPrivateKeyString("not a pem").
			TokenCtx(ctx)

		require.Error(t, err)
	})
}

func TestSigner(t *testing.T) {
	t.Run("auth header", func(t *testing.T) {
		req, err := http.NewRequest("GET", "https://api.example.com/resource", nil)
		require.NoError(t, err)

		NewSigner("some-token").SignAuthHeader(req)
		assert.Equal(t, "Bearer some-token", req.Header.Get("Authorization"))
	})

	t.Run("resty request", func(t *testing.T) {
		req := resty.New().R()

		NewSigner("some-token").SignRestyRequest(req)
		assert.Equal(t, "some-token", req.Token)
	})

	t.Run("url query", func(t *testing.T) {
		signed := NewSigner("some-token").SignUrlQuery("https://api.example.com/resource?page=2")
		assert.Equal(t, "https://api.example.com/resource?access_token=some-token&page=2", signed)
	})

	t.Run("url query on unparsable url", func(t *testing.T) {
		signed := NewSigner("some-token").SignUrlQuery("://not-a-url")
		assert.Equal(t, "://not-a-url?access_token=some-token", signed)
	})
}
