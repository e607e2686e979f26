package config

// CredentialAuthMetadata mints access tokens from the VM metadata service's default service account.
type CredentialAuthMetadata struct {
	Type   CredentialAuthType `json:"type" yaml:"type"`
	Scopes []Scope            `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

func (c *CredentialAuthMetadata) GetType() CredentialAuthType {
	return CredentialAuthTypeMetadata
}
