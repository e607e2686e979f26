package secagent

import (
	"context"
	"time"

	"github.com/rmorlok/credagent/cactx"
)

// MTLSConfig is a fetched mTLS configuration along with when it was fetched. A config is served
// from cache until its validity window elapses.
type MTLSConfig struct {
	S2AAddress string        `json:"s2a_address"`
	FetchedAt  time.Time     `json:"fetched_at"`
	Validity   time.Duration `json:"validity"`
}

func (c *MTLSConfig) ExpiresAt() time.Time {
	return c.FetchedAt.Add(c.Validity)
}

// IsValid reports whether this config can be served from cache. A config with an empty agent
// address is never valid, so failed or agentless lookups are retried on the next call.
func (c *MTLSConfig) IsValid(ctx context.Context) bool {
	if c == nil || c.S2AAddress == "" {
		return false
	}

	return cactx.GetClock(ctx).Now().Before(c.ExpiresAt())
}
