package oauth2

import (
	"context"
	"time"

	"github.com/rmorlok/credagent/cactx"
)

// Token is a minted access token along with its hard expiry. A zero ExpiresAt means the token
// does not expire.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`

	// RefreshToken is set when the endpoint rotated the refresh token as part of the grant.
	RefreshToken string `json:"refresh_token,omitempty"`

	// Scopes are the scopes the endpoint reported granting, which may be narrower than requested.
	Scopes []string `json:"scopes,omitempty"`

	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// UsableFor reports whether the token is good for at least margin past now. Tokens inside the
// margin are treated as expired so callers refresh before the hard deadline.
func (t *Token) UsableFor(ctx context.Context, margin time.Duration) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return cactx.GetClock(ctx).Now().Add(margin).Before(t.ExpiresAt)
}
