package httputil

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/contribchart/pkg/observability"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// NewClient returns an HTTP client with an instrumented transport and no
// timeout.
func NewClient() *http.Client {
	return &http.Client{Transport: NewTransport(nil)}
}

// NewTransport wraps base so that requests and responses are reported to
// [observability.HTTP]. A nil base uses [http.DefaultTransport].
func NewTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &hookTransport{base: base}
}

type hookTransport struct {
	base http.RoundTripper
}

func (t *hookTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	hooks := observability.HTTP()
	ctx := req.Context()
	host, path := req.URL.Host, req.URL.Path

	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, err
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))
	return resp, nil
}

// CheckStatus returns nil for 2xx responses and a *StatusError otherwise.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &StatusError{StatusCode: resp.StatusCode, URL: resp.Request.URL.String()}
}

// Canceled reports whether err stems from ctx being done.
func Canceled(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() != nil
}
