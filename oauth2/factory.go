package oauth2

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/httpf"
	"github.com/rmorlok/credagent/metadata"
)

// ForCredential creates the cached token source for a named credential from config. redisClient
// may be nil when neither the distributed lock nor the shared cache is configured.
func ForCredential(
	cfg config.C,
	f httpf.F,
	mds metadata.Client,
	redisClient caredis.Client,
	logger *slog.Logger,
	credentialName string,
) (TokenSource, error) {
	cred := cfg.GetRoot().GetCredential(credentialName)
	if cred == nil {
		return nil, errors.Errorf("no credential configured with name '%s'", credentialName)
	}

	var wrapped TokenSource

	switch auth := cred.Auth.Inner().(type) {
	case *config.CredentialAuthRefreshToken:
		wrapped = newRefreshTokenSource(cred.Name, auth, f)
	case *config.CredentialAuthJwtBearer:
		wrapped = newJwtBearerTokenSource(cred.Name, auth, f)
	case *config.CredentialAuthMetadata:
		wrapped = newMetadataTokenSource(auth, mds)
	default:
		return nil, errors.Errorf("credential '%s' has an unsupported auth type", credentialName)
	}

	return NewCachedTokenSource(cred.Name, cfg, wrapped, redisClient, logger), nil
}
