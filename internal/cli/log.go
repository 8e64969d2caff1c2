// Package cli implements the contribchart command-line interface.
//
// The CLI draws contribution charts in three ways: the generate command
// writes a PNG for one user, the tui command runs the interactive page in
// the terminal, and the serve command hosts the same page over HTTP. All
// three drive a [view.Controller].
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and fetch, draw and share events reach the
// logger through the observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Drew chart for octocat (212ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Hook Logging
// =============================================================================

// logHooks writes observability events to a logger. Routine events go to
// debug level so that they only show with --verbose.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnFetchStart(_ context.Context, username string) {
	h.logger.Debug("Fetching contributions", "user", username)
}

func (h *logHooks) OnFetchComplete(_ context.Context, username string, years int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Fetch failed", "user", username, "err", err, "duration", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("Fetched contributions", "user", username, "years", years, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnDraw(_ context.Context, username, theme string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("Draw failed", "user", username, "theme", theme, "err", err)
		return
	}
	h.logger.Debug("Drew chart", "user", username, "theme", theme, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnShare(_ context.Context, link string, err error) {
	if err != nil {
		h.logger.Warn("Share failed", "err", err)
		return
	}
	h.logger.Debug("Uploaded chart", "link", link)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("HTTP response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("HTTP error", "method", method, "host", host, "path", path, "err", err)
}
