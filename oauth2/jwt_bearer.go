package oauth2

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/httpf"
	"github.com/rmorlok/credagent/jwt"
)

const jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// jwtBearerTokenSource signs an assertion with the credential's private key and exchanges it at
// the token endpoint using the jwt-bearer grant.
type jwtBearerTokenSource struct {
	credentialName string
	auth           *config.CredentialAuthJwtBearer
	httpf          httpf.F
}

func newJwtBearerTokenSource(credentialName string, auth *config.CredentialAuthJwtBearer, f httpf.F) TokenSource {
	return &jwtBearerTokenSource{
		credentialName: credentialName,
		auth:           auth,
		httpf:          f,
	}
}

func (s *jwtBearerTokenSource) assertion(ctx context.Context) (string, error) {
	builder := jwt.NewClaimsBuilder().
		WithIssuer(s.auth.Issuer).
		WithAudience(s.auth.GetAudienceOrDefault()).
		WithScopes(s.auth.Scopes).
		WithExpiresInCtx(ctx, s.auth.GetAssertionValidityOrDefault())

	if s.auth.Subject != "" {
		builder = builder.WithSubject(s.auth.Subject)
	}

	return jwt.NewTokenBuilder().
		WithClaimsBuilder(builder).
		WithConfigKey(ctx, s.auth.Key).
		TokenCtx(ctx)
}

func (s *jwtBearerTokenSource) Token(ctx context.Context) (*Token, error) {
	assertion, err := s.assertion(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign assertion")
	}

	values := url.Values{
		"grant_type": {jwtBearerGrantType},
		"assertion":  {assertion},
	}

	resp, err := s.httpf.
		ForRequestType(httpf.RequestTypeOAuth).
		ForCredentialName(s.credentialName).
		New().
		UseContext(ctx).
		Request().
		Method("POST").
		URL(s.auth.TokenEndpoint).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		AddHeader("accept", "application/json").
		BodyString(values.Encode()).
		Send()
	if err != nil {
		return nil, errors.Wrap(err, "failed to post to token endpoint")
	}

	return tokenFromResponse(ctx, resp)
}

var _ TokenSource = (*jwtBearerTokenSource)(nil)
