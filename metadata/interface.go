package metadata

import (
	"context"
)

// MTLSConfiguration is the automatic mTLS configuration document served by the metadata service
// for the VM. The S2A address is the address of the local secure session agent, if one is present.
type MTLSConfiguration struct {
	S2AAddress string `json:"s2a"`
}

// TokenResponse is the OAuth2-shaped payload returned by the service account token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

//go:generate mockgen -source=./interface.go -destination=./mock/metadata.go -package=mock
type Client interface {
	// MTLSConfiguration retrieves the automatic mTLS configuration for the VM.
	MTLSConfiguration(ctx context.Context) (*MTLSConfiguration, error)

	// AccessToken retrieves an access token for the default service account, optionally
	// scoped down to the specified scopes.
	AccessToken(ctx context.Context, scopes []string) (*TokenResponse, error)

	// IdentityToken retrieves an identity token (a signed JWT) for the default service
	// account with the specified audience.
	IdentityToken(ctx context.Context, audience string) (string, error)

	// ProjectID retrieves the project the VM belongs to.
	ProjectID(ctx context.Context) (string, error)
}
