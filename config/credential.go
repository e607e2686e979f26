package config

type CredentialAuthType string

const (
	CredentialAuthTypeRefreshToken CredentialAuthType = "refresh_token"
	CredentialAuthTypeJwtBearer    CredentialAuthType = "jwt_bearer"
	CredentialAuthTypeMetadata     CredentialAuthType = "metadata"
)

// Scope is an OAuth scope requested for tokens minted from a credential.
type Scope struct {
	Id     string `json:"id" yaml:"id"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// CredentialAuthImpl is the interface implemented by concrete credential auth configurations.
type CredentialAuthImpl interface {
	GetType() CredentialAuthType
}

// CredentialAuth is the holder for a CredentialAuthImpl instance.
type CredentialAuth struct {
	InnerVal CredentialAuthImpl `json:"-" yaml:"-"`
}

func (a *CredentialAuth) Inner() CredentialAuthImpl {
	if a == nil {
		return nil
	}
	return a.InnerVal
}

func (a *CredentialAuth) GetType() CredentialAuthType {
	if a == nil || a.InnerVal == nil {
		return ""
	}
	return a.InnerVal.GetType()
}

var _ CredentialAuthImpl = (*CredentialAuth)(nil)

// Credential is a named credential the library can mint tokens for.
type Credential struct {
	Name string          `json:"name" yaml:"name"`
	Auth *CredentialAuth `json:"auth" yaml:"auth"`
}
