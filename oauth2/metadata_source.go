package oauth2

import (
	"context"
	"time"

	"github.com/rmorlok/credagent/cactx"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/metadata"
	"github.com/rmorlok/credagent/util"
)

// metadataTokenSource mints tokens for the VM's default service account via the metadata service.
type metadataTokenSource struct {
	auth *config.CredentialAuthMetadata
	mds  metadata.Client
}

func newMetadataTokenSource(auth *config.CredentialAuthMetadata, mds metadata.Client) TokenSource {
	return &metadataTokenSource{
		auth: auth,
		mds:  mds,
	}
}

func (s *metadataTokenSource) Token(ctx context.Context) (*Token, error) {
	scopes := util.Map(s.auth.Scopes, func(scope config.Scope) string {
		return scope.Id
	})

	resp, err := s.mds.AccessToken(ctx, scopes)
	if err != nil {
		return nil, err
	}

	token := &Token{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}

	if resp.ExpiresIn > 0 {
		token.ExpiresAt = cactx.GetClock(ctx).Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	return token, nil
}

var _ TokenSource = (*metadataTokenSource)(nil)
