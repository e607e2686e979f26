package httpf

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rmorlok/credagent/calog"
)

// NewLoggingRoundTripperFactory logs outbound requests with their request info context. Bodies are
// never logged; credentials flow through these requests.
func NewLoggingRoundTripperFactory(logger *slog.Logger) RoundTripperFactory {
	return &loggingRoundTripperFactory{logger: logger}
}

type loggingRoundTripperFactory struct {
	logger *slog.Logger
}

func (f *loggingRoundTripperFactory) NewRoundTripper(ri RequestInfo, transport http.RoundTripper) http.RoundTripper {
	if f.logger == nil {
		return nil
	}

	b := calog.NewBuilder(f.logger).
		WithComponent("httpf").
		With("request_type", string(ri.Type))

	if ri.CredentialName != "" {
		b = b.WithCredentialName(ri.CredentialName)
	}

	return &loggingRoundTripper{
		logger: b.Build(),
		inner:  transport,
	}
}

type loggingRoundTripper struct {
	logger *slog.Logger
	inner  http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := l.inner.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		l.logger.Warn("request failed",
			"method", req.Method,
			"host", req.URL.Host,
			"path", req.URL.Path,
			"elapsed", elapsed,
			"error", err,
		)
		return resp, err
	}

	l.logger.Debug("request completed",
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", elapsed,
	)

	return resp, err
}

var _ http.RoundTripper = (*loggingRoundTripper)(nil)
