package oauth2

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/httpf"
	"github.com/rmorlok/credagent/util"
)

// refreshTokenSource redeems a long-lived refresh token at the token endpoint for a fresh
// access token.
type refreshTokenSource struct {
	credentialName string
	auth           *config.CredentialAuthRefreshToken
	httpf          httpf.F
}

func newRefreshTokenSource(credentialName string, auth *config.CredentialAuthRefreshToken, f httpf.F) TokenSource {
	return &refreshTokenSource{
		credentialName: credentialName,
		auth:           auth,
		httpf:          f,
	}
}

func (s *refreshTokenSource) Token(ctx context.Context) (*Token, error) {
	clientId, err := s.auth.ClientId.GetValue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get client id")
	}

	refreshToken, err := s.auth.RefreshToken.GetValue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get refresh token")
	}

	values := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {clientId},
	}

	if s.auth.ClientSecret.HasValue(ctx) {
		clientSecret, err := s.auth.ClientSecret.GetValue(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get client secret")
		}
		values.Set("client_secret", clientSecret)
	}

	if len(s.auth.Scopes) > 0 {
		values.Set("scope", scopeString(s.auth.Scopes))
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

func scopeString(scopes []config.Scope) string {
	return strings.Join(util.Map(scopes, func(scope config.Scope) string {
		return scope.Id
	}), " ")
}

var _ TokenSource = (*refreshTokenSource)(nil)
