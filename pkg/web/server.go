package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/contribchart/pkg/view"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// NewController builds the controller for a new session. Required.
	NewController func() *view.Controller

	// Sharer publishes charts for POST /share. Nil disables sharing.
	Sharer view.Sharer

	// Logger receives request and share logs. Nil uses log.Default().
	Logger *log.Logger

	// SessionTTL is how long an idle session is kept (default 2h).
	SessionTTL time.Duration
}

// Server serves the chart page.
type Server struct {
	router   chi.Router
	sessions *sessions
	sharer   view.Sharer
	logger   *log.Logger

	// base outlives individual requests; fetches started by /submit run
	// under it so that finishing the request does not abort them.
	base     context.Context
	inflight sync.WaitGroup
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		sessions: newSessions(opts.SessionTTL, opts.NewController),
		sharer:   opts.Sharer,
		logger:   logger,
		base:     context.Background(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Post("/submit", s.handleSubmit)
	r.Post("/theme", s.handleTheme)
	r.Get("/chart.png", s.handleChart)
	r.Get("/download", s.handleDownload)
	r.Post("/share", s.handleShare)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. Fetches still running at that point are abandoned.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	base, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()
	s.base = base

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Serving chart page", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		err := srv.Shutdown(shutdownCtx)
		cancel()
		s.inflight.Wait()
		return err
	})
	return g.Wait()
}

// wait blocks until every fetch started by /submit has resolved.
func (s *Server) wait() {
	s.inflight.Wait()
}

// requestLogger logs one line per request at debug level, and failures at
// warn level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			kv := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start).Round(time.Millisecond),
				"request_id", middleware.GetReqID(r.Context()),
			}
			if status >= 500 {
				logger.Warn("Request failed", kv...)
				return
			}
			logger.Debug("Request", kv...)
		})
	}
}
