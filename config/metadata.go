package config

import (
	"time"

	"github.com/rmorlok/credagent/util"
)

const (
	// DefaultMetadataBaseUrl is the well-known address of the VM metadata service.
	DefaultMetadataBaseUrl = "http://metadata.google.internal"

	// MetadataHostEnvVar overrides the host used to reach the metadata service. The scheme stays http.
	MetadataHostEnvVar = "GCE_METADATA_HOST"
)

// Metadata configures how the library reaches the VM metadata service.
type Metadata struct {
	// BaseUrl explicitly overrides the metadata server address, including scheme. Takes precedence over
	// the environment override.
	BaseUrl string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// RequestTimeout bounds individual calls to the metadata service.
	RequestTimeout *HumanDuration `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
}

// GetBaseUrlOrDefault resolves the metadata server base URL. Precedence: explicit config, the
// GCE_METADATA_HOST environment variable, then the well-known default.
func (m *Metadata) GetBaseUrlOrDefault() string {
	if m != nil && m.BaseUrl != "" {
		return m.BaseUrl
	}

	if host := util.GetEnvDefault(MetadataHostEnvVar, ""); host != "" {
		return "http://" + host
	}

	return DefaultMetadataBaseUrl
}

func (m *Metadata) GetRequestTimeoutOrDefault() time.Duration {
	if m == nil || m.RequestTimeout == nil {
		return 5 * time.Second
	}

	return m.RequestTimeout.Duration
}
