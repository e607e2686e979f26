package jwt

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/cactx"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/util"
)

// ClaimString wraps a single string as a claims string list, which is how
// singular audiences are represented on registered claims.
func ClaimString(s string) jwt.ClaimStrings {
	return jwt.ClaimStrings{s}
}

// ClaimsBuilder builds assertion claims with the issuer/subject/audience properly constructed
// for presenting to a token endpoint.
type ClaimsBuilder interface {
	WithIssuer(issuer string) ClaimsBuilder
	WithSubject(subject string) ClaimsBuilder
	WithAudience(audience string) ClaimsBuilder
	WithScopes(scopes []config.Scope) ClaimsBuilder
	WithScopeIds(ids []string) ClaimsBuilder
	WithExpiration(expiration time.Time) ClaimsBuilder
	WithExpiresIn(expiresIn time.Duration) ClaimsBuilder
	WithExpiresInCtx(ctx context.Context, expiresIn time.Duration) ClaimsBuilder
	BuildCtx(context.Context) (*AssertionClaims, error)
	Build() (*AssertionClaims, error)
	MustBuild() AssertionClaims
	MustBuildCtx(context.Context) AssertionClaims
}

type claimsBuilder struct {
	issuer     *string
	subject    *string
	audience   *string
	scope      *string
	expiration *time.Time
}

func (b *claimsBuilder) WithIssuer(issuer string) ClaimsBuilder {
	b.issuer = &issuer
	return b
}

func (b *claimsBuilder) WithSubject(subject string) ClaimsBuilder {
	b.subject = &subject
	return b
}

func (b *claimsBuilder) WithAudience(audience string) ClaimsBuilder {
	b.audience = &audience
	return b
}

func (b *claimsBuilder) WithScopes(scopes []config.Scope) ClaimsBuilder {
	return b.WithScopeIds(util.Map(scopes, func(scope config.Scope) string {
		return scope.Id
	}))
}

func (b *claimsBuilder) WithScopeIds(ids []string) ClaimsBuilder {
	scope := strings.Join(ids, " ")
	b.scope = &scope
	return b
}

func (b *claimsBuilder) WithExpiration(expiration time.Time) ClaimsBuilder {
	b.expiration = &expiration
	return b
}

func (b *claimsBuilder) WithExpiresIn(expiresIn time.Duration) ClaimsBuilder {
	return b.WithExpiresInCtx(context.Background(), expiresIn)
}

func (b *claimsBuilder) WithExpiresInCtx(ctx context.Context, expiresIn time.Duration) ClaimsBuilder {
	t := cactx.GetClock(ctx).Now().Add(expiresIn)
	b.expiration = &t
	return b
}

func (b *claimsBuilder) BuildCtx(ctx context.Context) (*AssertionClaims, error) {
	if b.issuer == nil {
		return nil, errors.New("issuer is required")
	}

	if b.audience == nil {
		return nil, errors.New("audience is required")
	}

	// Service account assertions are self-issued, so the subject defaults to the issuer.
	subject := util.CoerceString(b.subject)
	if subject == "" {
		subject = *b.issuer
	}

	c := AssertionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   *b.issuer,
			Subject:  subject,
			Audience: ClaimString(*b.audience),
			IssuedAt: &jwt.NumericDate{Time: cactx.GetClock(ctx).Now()},
			ID:       cactx.GetUuidGenerator(ctx).NewString(),
		},
		Scope: util.CoerceString(b.scope),
	}

	if b.expiration != nil {
		c.ExpiresAt = &jwt.NumericDate{Time: *b.expiration}
	}

	return &c, nil
}

func (b *claimsBuilder) Build() (*AssertionClaims, error) {
	return b.BuildCtx(context.Background())
}

func (b *claimsBuilder) MustBuildCtx(ctx context.Context) AssertionClaims {
	c, err := b.BuildCtx(ctx)
	if err != nil {
		panic(err)
	}

	return *c
}

func (b *claimsBuilder) MustBuild() AssertionClaims {
	return b.MustBuildCtx(context.Background())
}

func NewClaimsBuilder() ClaimsBuilder {
	return &claimsBuilder{}
}
