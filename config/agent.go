package config

import "time"

// Agent configures the secure session agent address source.
type Agent struct {
	// ConfigValidity is how long a fetched mTLS configuration is served from cache before it is
	// re-fetched from the metadata service.
	ConfigValidity *HumanDuration `json:"config_validity,omitempty" yaml:"config_validity,omitempty"`

	// SharedCache stores the fetched configuration in redis so a fleet of processes shares a single
	// fetch. Requires the redis block to be configured.
	SharedCache bool `json:"shared_cache,omitempty" yaml:"shared_cache,omitempty"`
}

func (a *Agent) GetConfigValidityOrDefault() time.Duration {
	if a == nil || a.ConfigValidity == nil {
		return time.Hour
	}

	return a.ConfigValidity.Duration
}

func (a *Agent) GetSharedCache() bool {
	if a == nil {
		return false
	}

	return a.SharedCache
}
