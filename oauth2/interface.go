// Package oauth2 mints access tokens for configured credentials. Each credential auth type has
// a token source; sources are wrapped in a caching layer that refreshes tokens shortly before
// they expire.
package oauth2

import (
	"context"
)

//go:generate mockgen -source=./interface.go -destination=./mock/oauth2.go -package=mock
type TokenSource interface {
	// Token returns a valid access token, minting a new one if the cached token is missing or
	// within the early refresh margin of its expiry.
	Token(ctx context.Context) (*Token, error)
}
