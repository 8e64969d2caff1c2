package contrib

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/httputil"
	"github.com/matzehuels/contribchart/pkg/observability"
)

// DefaultBaseURL is the public contributions API.
const DefaultBaseURL = "https://github-contributions.vercel.app/api/v1"

// Client fetches contribution calendars over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sends token as a bearer Authorization header.
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.headers["Authorization"] = "Bearer " + token
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.headers["User-Agent"] = ua
		}
	}
}

// NewClient creates a Client for the API rooted at baseURL.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		http:    httputil.NewClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "contribchart",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Fetch retrieves the contribution calendar for username. Every failure is
// reported as [errors.ErrCodeFetchFailed].
func (c *Client) Fetch(ctx context.Context, username string) (*Data, error) {
	hooks := observability.Chart()
	hooks.OnFetchStart(ctx, username)
	start := time.Now()

	data, err := c.fetch(ctx, username)
	years := 0
	if data != nil {
		years = len(data.Years)
	}
	hooks.OnFetchComplete(ctx, username, years, time.Since(start), err)
	return data, err
}

func (c *Client) fetch(ctx context.Context, username string) (*Data, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch contributions for %q", username)
	}

	u := c.baseURL + "/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch contributions for %q", username)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch contributions for %q", username)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch contributions for %q", username)
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "decode contributions for %q", username)
	}
	if body.Years == nil {
		return nil, errors.New(errors.ErrCodeFetchFailed, "decode contributions for %q: response has no years", username)
	}
	return &Data{Years: *body.Years, Contributions: body.Contributions}, nil
}

// payload is the wire form of Data. Years is a pointer so that a missing or
// null list, which is a malformed reply, can be told apart from an empty one,
// which means the profile does not exist.
type payload struct {
	Years         *[]Year        `json:"years"`
	Contributions []Contribution `json:"contributions"`
}
