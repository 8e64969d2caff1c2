package export

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/contribchart/pkg/contrib"
	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/render/chart"
)

func drawnCanvas(t *testing.T) *chart.Canvas {
	t.Helper()
	c := chart.NewCanvas()
	data := &contrib.Data{
		Years: []contrib.Year{{Year: "2024", Total: 1, Range: contrib.Range{Start: "2024-01-01", End: "2024-12-31"}}},
		Contributions: []contrib.Contribution{
			{Date: "2024-03-01", Count: 1, Intensity: 1},
		},
	}
	if err := chart.New(chart.WithScale(1)).Draw(c, chart.Options{Data: data, Username: "octocat", Theme: "standard"}); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDownload(t *testing.T) {
	var buf bytes.Buffer
	if err := Download(drawnCanvas(t), &buf); err != nil {
		t.Fatalf("Download() failed: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("Download() did not write a PNG: %v", err)
	}
}

func TestDownload_NoCanvas(t *testing.T) {
	var buf bytes.Buffer
	if err := Download(nil, &buf); err != nil {
		t.Errorf("Download(nil) error = %v, want nil", err)
	}
	if err := Download(chart.NewCanvas(), &buf); err != nil {
		t.Errorf("Download(blank) error = %v, want nil", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes without a canvas", buf.Len())
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)

	ok, err := SaveFile(nil, path)
	if ok || err != nil {
		t.Fatalf("SaveFile(nil) = %v, %v; want false, nil", ok, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("SaveFile(nil) created a file")
	}

	ok, err = SaveFile(drawnCanvas(t), path)
	if !ok || err != nil {
		t.Fatalf("SaveFile() = %v, %v; want true, nil", ok, err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestSharer_Share(t *testing.T) {
	var gotAuth, gotField string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		f, _, err := r.FormFile("image")
		if err == nil {
			b, _ := io.ReadAll(f)
			if _, err := png.Decode(bytes.NewReader(b)); err == nil {
				gotField = "png"
			}
		}
		w.Write([]byte(`{"data": {"link": "https://i.example.com/abc.png"}}`))
	}))
	defer server.Close()

	s := NewSharer(WithUploadURL(server.URL), WithClientID("cid"), WithText("hello"))
	intent, err := s.Share(context.Background(), drawnCanvas(t))
	if err != nil {
		t.Fatalf("Share() failed: %v", err)
	}

	if gotAuth != "Client-ID cid" {
		t.Errorf("Authorization = %q, want Client-ID header", gotAuth)
	}
	if gotField != "png" {
		t.Error("upload did not carry a PNG in the image field")
	}

	u, err := url.Parse(intent)
	if err != nil {
		t.Fatalf("intent is not a URL: %v", err)
	}
	if !strings.HasPrefix(intent, DefaultIntentURL) {
		t.Errorf("intent = %q, want prefix %q", intent, DefaultIntentURL)
	}
	if got := u.Query().Get("url"); got != "https://i.example.com/abc.png" {
		t.Errorf("intent url = %q", got)
	}
	if got := u.Query().Get("text"); got != "hello" {
		t.Errorf("intent text = %q, want hello", got)
	}
}

func TestSharer_ResponseShapes(t *testing.T) {
	for _, body := range []string{`{"link": "https://x/y"}`, `{"url": "https://x/y"}`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		intent, err := NewSharer(WithUploadURL(server.URL)).Share(context.Background(), drawnCanvas(t))
		server.Close()
		if err != nil {
			t.Errorf("body %s: Share() failed: %v", body, err)
			continue
		}
		if !strings.Contains(intent, url.QueryEscape("https://x/y")) {
			t.Errorf("body %s: intent %q misses link", body, intent)
		}
	}
}

func TestSharer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) }},
		{"malformed", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`nope`)) }},
		{"no link", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{}`)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			intent, err := NewSharer(WithUploadURL(server.URL)).Share(context.Background(), drawnCanvas(t))
			if !errors.Is(err, errors.ErrCodeShareFailed) {
				t.Errorf("Share() error = %v, want %s", err, errors.ErrCodeShareFailed)
			}
			if intent != "" {
				t.Errorf("intent = %q on failure, want empty", intent)
			}
		})
	}
}

func TestSharer_NoCanvas(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	s := NewSharer(WithUploadURL(server.URL))
	for _, c := range []*chart.Canvas{nil, chart.NewCanvas()} {
		intent, err := s.Share(context.Background(), c)
		if intent != "" || err != nil {
			t.Errorf("Share(no canvas) = %q, %v; want empty, nil", intent, err)
		}
	}
	if called {
		t.Error("Share uploaded without a canvas")
	}
}
