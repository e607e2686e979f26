package httpf

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/rmorlok/credagent/config"
	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/transport"
)

// RoundTripperFactory produces middleware round trippers for outbound requests.
// Returning nil opts the factory out of the request entirely.
type RoundTripperFactory interface {
	NewRoundTripper(ri RequestInfo, transport http.RoundTripper) http.RoundTripper
}

type clientFactory struct {
	cfg         config.C
	middlewares []RoundTripperFactory
	logger      *slog.Logger
	requestInfo RequestInfo

	// Cached at the object level

	factoryParent     *gentleman.Client
	factoryParentOnce sync.Once
}

func CreateFactory(
	cfg config.C,
	logger *slog.Logger,
	middlewares ...RoundTripperFactory,
) F {
	// Order matters here to determine the order of middlewares
	return &clientFactory{
		cfg:         cfg,
		middlewares: middlewares,
		logger:      logger,
		requestInfo: RequestInfo{
			Type: RequestTypeGlobal,
		},
	}
}

func (f *clientFactory) ForRequestInfo(ri RequestInfo) F {
	return &clientFactory{
		cfg:         f.cfg,
		middlewares: f.middlewares,
		logger:      f.logger,
		requestInfo: ri,
	}
}

func (f *clientFactory) ForRequestType(rt RequestType) F {
	ri := f.requestInfo
	ri.Type = rt

	return f.ForRequestInfo(ri)
}

func (f *clientFactory) ForCredentialName(name string) F {
	ri := f.requestInfo
	ri.CredentialName = name

	return f.ForRequestInfo(ri)
}

func (f *clientFactory) New() *gentleman.Client {
	// Callers use chaining within the factory For(...) structure to
	// define context. By the time they trigger new, the context is established
	// and we can cache with middlewares applied.
	f.factoryParentOnce.Do(func() {
		f.factoryParent = gentleman.New()

		parent := http.DefaultTransport
		for _, m := range f.middlewares {
			result := m.NewRoundTripper(f.requestInfo, parent)
			if result != nil {
				parent = result
			}
		}

		f.factoryParent.Use(
			transport.Set(parent),
		)
	})

	return gentleman.New().UseParent(f.factoryParent)
}

var _ F = (*clientFactory)(nil)
