package export

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/httputil"
	"github.com/matzehuels/contribchart/pkg/observability"
	"github.com/matzehuels/contribchart/pkg/render/chart"
)

// Defaults for the share flow.
const (
	DefaultUploadURL = "https://api.imgur.com/3/image"
	DefaultIntentURL = "https://twitter.com/intent/tweet"
	DefaultShareText = "Check out my #GitHubContributions history over time. A free tool by @sallar"
)

// Sharer uploads charts to an image host and builds a tweet intent for the
// hosted link.
type Sharer struct {
	http      *http.Client
	uploadURL string
	intentURL string
	clientID  string
	text      string
}

// ShareOption configures a Sharer.
type ShareOption func(*Sharer)

// WithUploadURL sets the image host endpoint.
func WithUploadURL(u string) ShareOption {
	return func(s *Sharer) {
		if u != "" {
			s.uploadURL = u
		}
	}
}

// WithIntentURL sets the social network's share intent endpoint.
func WithIntentURL(u string) ShareOption {
	return func(s *Sharer) {
		if u != "" {
			s.intentURL = u
		}
	}
}

// WithClientID authenticates uploads with an "Authorization: Client-ID" header.
func WithClientID(id string) ShareOption {
	return func(s *Sharer) { s.clientID = id }
}

// WithText sets the message that accompanies the link.
func WithText(text string) ShareOption {
	return func(s *Sharer) {
		if text != "" {
			s.text = text
		}
	}
}

// WithShareHTTPClient replaces the instrumented default client.
func WithShareHTTPClient(hc *http.Client) ShareOption {
	return func(s *Sharer) { s.http = hc }
}

// NewSharer creates a Sharer.
func NewSharer(opts ...ShareOption) *Sharer {
	s := &Sharer{
		http:      httputil.NewClient(),
		uploadURL: DefaultUploadURL,
		intentURL: DefaultIntentURL,
		text:      DefaultShareText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// uploadResponse accepts the shapes common image hosts answer with.
type uploadResponse struct {
	Link string `json:"link"`
	URL  string `json:"url"`
	Data struct {
		Link string `json:"link"`
	} `json:"data"`
}

func (r uploadResponse) link() string {
	switch {
	case r.Data.Link != "":
		return r.Data.Link
	case r.Link != "":
		return r.Link
	default:
		return r.URL
	}
}

// Share uploads the canvas and returns the intent URL to open. A blank
// canvas returns "" and no error.
func (s *Sharer) Share(ctx context.Context, c *chart.Canvas) (string, error) {
	if c.Blank() {
		return "", nil
	}

	link, err := s.upload(ctx, c)
	observability.Chart().OnShare(ctx, link, err)
	if err != nil {
		return "", err
	}
	return s.Intent(link), nil
}

// Intent builds the share intent for a hosted image link.
func (s *Sharer) Intent(link string) string {
	q := url.Values{}
	q.Set("text", s.text)
	q.Set("url", link)
	return s.intentURL + "?" + q.Encode()
}

func (s *Sharer) upload(ctx context.Context, c *chart.Canvas) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", Filename)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "build upload")
	}
	if err := c.EncodePNG(part); err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "encode chart")
	}
	_ = mw.WriteField("type", "file")
	_ = mw.WriteField("name", Filename)
	if err := mw.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "build upload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "build upload")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if s.clientID != "" {
		req.Header.Set("Authorization", "Client-ID "+s.clientID)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "upload chart")
	}
	defer resp.Body.Close()
	if err := httputil.CheckStatus(resp); err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "upload chart")
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(errors.ErrCodeShareFailed, err, "decode upload response")
	}
	if out.link() == "" {
		return "", errors.New(errors.ErrCodeShareFailed, "upload response carried no link")
	}
	return out.link(), nil
}
