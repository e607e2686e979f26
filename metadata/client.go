package metadata

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/httpf"
	"gopkg.in/h2non/gentleman.v2"
)

const (
	mtlsConfigurationPath = "/instance/platform-security/auto-mtls-configuration"
	accessTokenPath       = "/instance/service-accounts/default/token"
	identityTokenPath     = "/instance/service-accounts/default/identity"
	projectIdPath         = "/project/project-id"

	// flavorHeader must accompany every request or the metadata service rejects it.
	flavorHeader      = "Metadata-Flavor"
	flavorHeaderValue = "Google"
)

type client struct {
	cfg    config.C
	httpf  httpf.F
	logger *slog.Logger
}

// NewClient creates a client for the VM metadata service. The server address is resolved from
// config, falling back to the GCE_METADATA_HOST environment variable, then the well-known default.
func NewClient(cfg config.C, httpf httpf.F, logger *slog.Logger) Client {
	return &client{
		cfg:    cfg,
		httpf:  httpf,
		logger: logger,
	}
}

// get performs a GET against the metadata service, applying the flavor header and the configured
// request timeout. configure, if non-nil, can add query params before the request is sent.
func (c *client) get(ctx context.Context, path string, configure func(*gentleman.Request) *gentleman.Request) ([]byte, error) {
	root := c.cfg.GetRoot()

	ctx, cancel := context.WithTimeout(ctx, root.Metadata.GetRequestTimeoutOrDefault())
	defer cancel()

	req := c.httpf.
		ForRequestType(httpf.RequestTypeMetadata).
		New().
		UseContext(ctx).
		Request().
		Method("GET").
		URL(strings.TrimRight(root.Metadata.GetBaseUrlOrDefault(), "/") + path).
		SetHeader(flavorHeader, flavorHeaderValue)

	if configure != nil {
		req = configure(req)
	}

	resp, err := req.Send()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query metadata service at '%s'", path)
	}

	if !resp.Ok {
		return nil, errors.Errorf("metadata service returned status %d for '%s'", resp.StatusCode, path)
	}

	return resp.Bytes(), nil
}

func (c *client) MTLSConfiguration(ctx context.Context) (*MTLSConfiguration, error) {
	body, err := c.get(ctx, mtlsConfigurationPath, nil)
	if err != nil {
		return nil, err
	}

	var mtlsConfig MTLSConfiguration
	if err := json.Unmarshal(body, &mtlsConfig); err != nil {
		return nil, errors.Wrap(err, "failed to parse mtls autoconfiguration")
	}

	return &mtlsConfig, nil
}

func (c *client) AccessToken(ctx context.Context, scopes []string) (*TokenResponse, error) {
	body, err := c.get(ctx, accessTokenPath, func(req *gentleman.Request) *gentleman.Request {
		if len(scopes) > 0 {
			req = req.SetQuery("scopes", strings.Join(scopes, ","))
		}
		return req
	})
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errors.Wrap(err, "failed to parse service account token response")
	}

	if token.AccessToken == "" {
		return nil, errors.New("service account token response missing access_token")
	}

	return &token, nil
}

func (c *client) IdentityToken(ctx context.Context, audience string) (string, error) {
	if audience == "" {
		return "", errors.New("audience is required for identity tokens")
	}

	body, err := c.get(ctx, identityTokenPath, func(req *gentleman.Request) *gentleman.Request {
		return req.SetQuery("audience", audience)
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(body)), nil
}

func (c *client) ProjectID(ctx context.Context) (string, error) {
	body, err := c.get(ctx, projectIdPath, nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(body)), nil
}

var _ Client = (*client)(nil)
