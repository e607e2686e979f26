package config

// CredentialAuthRefreshToken mints access tokens by redeeming a long-lived refresh token at an OAuth2
// token endpoint.
type CredentialAuthRefreshToken struct {
	Type          CredentialAuthType `json:"type" yaml:"type"`
	TokenEndpoint string             `json:"token_endpoint" yaml:"token_endpoint"`
	ClientId      *StringValue       `json:"client_id" yaml:"client_id"`
	ClientSecret  *StringValue       `json:"client_secret" yaml:"client_secret"`
	RefreshToken  *StringValue       `json:"refresh_token" yaml:"refresh_token"`
	Scopes        []Scope            `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

func (c *CredentialAuthRefreshToken) GetType() CredentialAuthType {
	return CredentialAuthTypeRefreshToken
}
