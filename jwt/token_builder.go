package jwt

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/config"
)

// TokenBuilder signs assertion claims into a compact JWT string. Key material can come from
// raw bytes, a filesystem path, or config key data.
type TokenBuilder interface {
	WithClaims(claims *AssertionClaims) TokenBuilder
	WithClaimsBuilder(builder ClaimsBuilder) TokenBuilder
	WithPrivateKey(keyData []byte) TokenBuilder
	WithPrivateKeyString(keyData string) TokenBuilder
	WithPrivateKeyPath(path string) TokenBuilder
	WithConfigKey(ctx context.Context, kd config.KeyData) TokenBuilder
	TokenCtx(ctx context.Context) (string, error)
	Token() (string, error)
	MustTokenCtx(ctx context.Context) string
	MustToken() string
}

type tokenBuilder struct {
	claims         *AssertionClaims
	claimsBuilder  ClaimsBuilder
	privateKeyData []byte
	privateKeyPath *string
	err            error
}

func (tb *tokenBuilder) WithClaims(claims *AssertionClaims) TokenBuilder {
	tb.claims = claims
	return tb
}

func (tb *tokenBuilder) WithClaimsBuilder(builder ClaimsBuilder) TokenBuilder {
	tb.claimsBuilder = builder
	return tb
}

func (tb *tokenBuilder) WithPrivateKey(keyData []byte) TokenBuilder {
	tb.privateKeyData = keyData
	return tb
}

func (tb *tokenBuilder) WithPrivateKeyString(keyData string) TokenBuilder {
	return tb.WithPrivateKey([]byte(keyData))
}

func (tb *tokenBuilder) WithPrivateKeyPath(path string) TokenBuilder {
	tb.privateKeyPath = &path
	return tb
}

func (tb *tokenBuilder) WithConfigKey(ctx context.Context, kd config.KeyData) TokenBuilder {
	data, err := kd.GetData(ctx)
	if err != nil {
		tb.err = errors.Wrap(err, "failed to get key data")
		return tb
	}

	return tb.WithPrivateKey(data)
}

// loadPrivateKeyFromPEM loads a signing key from PEM data, selecting the signing method from
// the key type.
func loadPrivateKeyFromPEM(keyData []byte) (interface{}, jwt.SigningMethod, error) {
	block, rest := pem.Decode(keyData)
	if block == nil {
		return nil, nil, fmt.Errorf("failed to decode PEM block containing private key")
	}

	if block.Type == "EC PARAMETERS" {
		block, _ = pem.Decode(rest)
		if block == nil {
			return nil, nil, fmt.Errorf("EC PEM file contained EC PARAMETERS but not EC PRIVATE KEY")
		}
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse RSA private key")
		}

		return privateKey, jwt.SigningMethodRS256, nil
	case "EC PRIVATE KEY":
		privateKey, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse EC private key")
		}

		return signingKeyMethodFromParsedPrivateKey(privateKey)
	case "PRIVATE KEY":
		privateKey, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse private key")
		}

		return signingKeyMethodFromParsedPrivateKey(privateKey)
	default:
		return nil, nil, fmt.Errorf("unsupported private key type: %s", block.Type)
	}
}

func signingKeyMethodFromParsedPrivateKey(parsedKey interface{}) (interface{}, jwt.SigningMethod, error) {
	switch k := parsedKey.(type) {
	case *rsa.PrivateKey:
		return parsedKey, jwt.SigningMethodRS256, nil
	case *ecdsa.PrivateKey:
		switch k.Curve.Params().Name {
		case "P-256":
			return parsedKey, jwt.SigningMethodES256, nil
		case "P-384":
			return parsedKey, jwt.SigningMethodES384, nil
		case "P-521":
			return parsedKey, jwt.SigningMethodES512, nil
		default:
			return nil, nil, errors.New("unsupported elliptic curve for ECDSA")
		}
	case ed25519.PrivateKey:
		return parsedKey, jwt.SigningMethodEdDSA, nil
	case *ed25519.PrivateKey:
		return parsedKey, jwt.SigningMethodEdDSA, nil
	default:
		return nil, nil, errors.New("unsupported private key type")
	}
}

func (tb *tokenBuilder) getSigningKeyDataAndMethod() (interface{}, jwt.SigningMethod, error) {
	if tb.privateKeyData != nil && tb.privateKeyPath != nil {
		return nil, nil, errors.New("cannot specify private key data and path")
	}

	if tb.privateKeyData == nil && tb.privateKeyPath == nil {
		return nil, nil, errors.New("key material must be specified in some form")
	}

	if tb.privateKeyData != nil {
		return loadPrivateKeyFromPEM(tb.privateKeyData)
	}

	path := *tb.privateKeyPath
	_, err := os.Stat(path)
	if err != nil {
		// attempt home path expansion
		path, err = homedir.Expand(path)
		if err != nil {
			return nil, nil, err
		}
	}

	_, err = os.Stat(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid private key path")
	}

	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error reading private key")
	}

	return loadPrivateKeyFromPEM(keyData)
}

func (tb *tokenBuilder) TokenCtx(ctx context.Context) (string, error) {
	if tb.err != nil {
		return "", tb.err
	}

	var claims *AssertionClaims
	var err error

	if tb.claims != nil {
		claims = tb.claims
	} else {
		if tb.claimsBuilder == nil {
			return "", errors.New("claims must be specified in some form")
		}

		claims, err = tb.claimsBuilder.BuildCtx(ctx)
		if err != nil {
			return "", err
		}
	}

	keyData, signingMethod, err := tb.getSigningKeyDataAndMethod()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString(keyData)
	if err != nil {
		return "", errors.Wrap(err, "error signing jwt")
	}

	return tokenString, nil
}

func (tb *tokenBuilder) Token() (string, error) {
	return tb.TokenCtx(context.Background())
}

func (tb *tokenBuilder) MustTokenCtx(ctx context.Context) string {
	token, err := tb.TokenCtx(ctx)
	if err != nil {
		panic(err)
	}

	return token
}

func (tb *tokenBuilder) MustToken() string {
	return tb.MustTokenCtx(context.Background())
}

func NewTokenBuilder() TokenBuilder {
	return &tokenBuilder{}
}
