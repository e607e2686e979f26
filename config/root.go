package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

type Root struct {
	Metadata    *Metadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Agent       *Agent         `json:"agent,omitempty" yaml:"agent,omitempty"`
	Credentials []Credential   `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	Tokens      *Tokens        `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Logging     *LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	Redis       *Redis         `json:"redis,omitempty" yaml:"redis,omitempty"`
}

func (r *Root) GetRootLogger() *slog.Logger {
	if r == nil || r.Logging == nil {
		return (&LoggingConfigNone{Type: LoggingConfigTypeNone}).GetRootLogger()
	}

	return r.Logging.GetRootLogger()
}

// GetCredential finds a configured credential by name. Returns nil if no credential has that name.
func (r *Root) GetCredential(name string) *Credential {
	if r == nil {
		return nil
	}

	for i := range r.Credentials {
		if r.Credentials[i].Name == name {
			return &r.Credentials[i]
		}
	}

	return nil
}

func (r *Root) Validate(ctx context.Context) error {
	result := &multierror.Error{}

	seen := make(map[string]bool)
	for i, cred := range r.Credentials {
		path := fmt.Sprintf("$.credentials[%d]", i)

		if cred.Name == "" {
			result = multierror.Append(result, fmt.Errorf("%s: name is required", path))
		} else if seen[cred.Name] {
			result = multierror.Append(result, fmt.Errorf("%s: duplicate credential name '%s'", path, cred.Name))
		}
		seen[cred.Name] = true

		if cred.Auth.Inner() == nil {
			result = multierror.Append(result, fmt.Errorf("%s: auth block is required", path))
			continue
		}

		switch auth := cred.Auth.Inner().(type) {
		case *CredentialAuthRefreshToken:
			if auth.TokenEndpoint == "" {
				result = multierror.Append(result, fmt.Errorf("%s.auth: token_endpoint is required", path))
			}
			if auth.RefreshToken == nil || !auth.RefreshToken.HasValue(ctx) {
				result = multierror.Append(result, fmt.Errorf("%s.auth: refresh_token does not have a value", path))
			}
			if auth.ClientId == nil || !auth.ClientId.HasValue(ctx) {
				result = multierror.Append(result, fmt.Errorf("%s.auth: client_id does not have a value", path))
			}
		case *CredentialAuthJwtBearer:
			if auth.TokenEndpoint == "" {
				result = multierror.Append(result, fmt.Errorf("%s.auth: token_endpoint is required", path))
			}
			if auth.Issuer == "" {
				result = multierror.Append(result, fmt.Errorf("%s.auth: issuer is required", path))
			}
			if auth.Key == nil || !auth.Key.HasData(ctx) {
				result = multierror.Append(result, fmt.Errorf("%s.auth: key does not have data", path))
			}
		}
	}

	if r.Agent.GetSharedCache() && r.Redis.Inner() == nil {
		result = multierror.Append(result, fmt.Errorf("$.agent: shared_cache requires the redis block"))
	}

	if r.Tokens.GetUseDistributedLockOrDefault() && r.Redis.Inner() == nil {
		result = multierror.Append(result, fmt.Errorf("$.tokens: use_distributed_lock requires the redis block"))
	}

	return result.ErrorOrNil()
}

func UnmarshallYamlRoot(data []byte) (*Root, error) {
	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	return &root, nil
}
