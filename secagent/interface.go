// Package secagent resolves the address of the secure session agent running alongside the VM.
// The address is published by the VM metadata service as part of the automatic mTLS
// configuration and is cached for a configurable validity window.
package secagent

import (
	"context"
)

//go:generate mockgen -source=./interface.go -destination=./mock/secagent.go -package=mock
type S interface {
	// GetAddress returns the address of the secure session agent, or the empty string if the
	// agent address cannot be determined. This method never returns an error; failures to reach
	// or parse the metadata service are logged and reported as an empty address. Failed lookups
	// are not cached, so a later call will retry.
	GetAddress(ctx context.Context) string

	// GetMTLSConfig returns the mTLS configuration for the VM, from cache if a valid entry is
	// present, otherwise fetched from the metadata service. Unlike GetAddress, errors are
	// returned to the caller.
	GetMTLSConfig(ctx context.Context) (*MTLSConfig, error)
}
