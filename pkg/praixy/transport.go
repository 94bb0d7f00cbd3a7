package praixy

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// loggingTransport wraps an http.RoundTripper and logs each exchange at
// debug level: method, URL, latency and status. Request and response bodies
// are never logged; they may contain message content.
type loggingTransport struct {
	base http.RoundTripper
	log  hclog.Logger
}

// NewLoggingTransport returns a RoundTripper that logs exchanges through
// the given logger before delegating to base. A nil base uses
// http.DefaultTransport.
func NewLoggingTransport(base http.RoundTripper, log hclog.Logger) http.RoundTripper {
	return &loggingTransport{base: base, log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rt := t.base
	if rt == nil {
		rt = http.DefaultTransport
	}

	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.log.Debug("round trip failed",
			"method", req.Method,
			"url", req.URL.String(),
			"elapsed", time.Since(start),
			"error", err)
		return resp, err
	}

	t.log.Debug("round trip",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start))
	return resp, nil
}
