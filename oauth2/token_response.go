package oauth2

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/cactx"
	"gopkg.in/h2non/gentleman.v2"
)

// tokenResponse is the wire shape of an OAuth2 token endpoint response.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	ExpiresIn    int64  `json:"expires_in"`
}

// tokenFromResponse parses a token endpoint response into a token, converting the relative
// expires_in into a hard expiry against the context clock.
func tokenFromResponse(ctx context.Context, resp *gentleman.Response) (*Token, error) {
	if !resp.Ok {
		return nil, errors.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Bytes(), &tr); err != nil {
		return nil, errors.Wrap(err, "failed to parse token response")
	}

	if tr.AccessToken == "" {
		return nil, errors.New("no access token in response")
	}

	token := &Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
	}

	if tr.Scope != "" {
		token.Scopes = strings.Fields(tr.Scope)
	}

	if tr.ExpiresIn > 0 {
		token.ExpiresAt = cactx.GetClock(ctx).Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	return token, nil
}
