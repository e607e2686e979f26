package config

import "time"

// CredentialAuthJwtBearer mints access tokens by signing a JWT assertion with a private key and
// exchanging it at an OAuth2 token endpoint using the jwt-bearer grant.
type CredentialAuthJwtBearer struct {
	Type          CredentialAuthType `json:"type" yaml:"type"`
	TokenEndpoint string             `json:"token_endpoint" yaml:"token_endpoint"`
	Issuer        string             `json:"issuer" yaml:"issuer"`
	Subject       string             `json:"subject,omitempty" yaml:"subject,omitempty"`
	Audience      string             `json:"audience,omitempty" yaml:"audience,omitempty"`
	Key           *KeyDataHolder     `json:"key" yaml:"key"`
	Scopes        []Scope            `json:"scopes,omitempty" yaml:"scopes,omitempty"`

	// AssertionValidity is how long signed assertions are valid for.
	AssertionValidity *HumanDuration `json:"assertion_validity,omitempty" yaml:"assertion_validity,omitempty"`
}

func (c *CredentialAuthJwtBearer) GetType() CredentialAuthType {
	return CredentialAuthTypeJwtBearer
}

func (c *CredentialAuthJwtBearer) GetAssertionValidityOrDefault() time.Duration {
	if c == nil || c.AssertionValidity == nil {
		return 5 * time.Minute
	}

	return c.AssertionValidity.Duration
}

// GetAudienceOrDefault falls back to the token endpoint, which is what most OAuth2 servers expect as
// the assertion audience.
func (c *CredentialAuthJwtBearer) GetAudienceOrDefault() string {
	if c == nil {
		return ""
	}

	if c.Audience != "" {
		return c.Audience
	}

	return c.TokenEndpoint
}
