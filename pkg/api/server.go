package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

const (
	// DefaultMaxBodyBytes caps request bodies.
	DefaultMaxBodyBytes = 32 << 20

	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	// MaxPoints rejects larger point sets with TOO_LARGE. Zero disables the
	// limit.
	MaxPoints int

	// BruteForceLimit is the largest point set brute force runs on. Compare
	// requests above it skip brute force; closest requests for brute force
	// are rejected with TOO_LARGE. Zero means
	// pipeline.DefaultBruteForceLimit and a negative value disables it.
	BruteForceLimit int

	// MaxBodyBytes caps request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// ReadTimeout and WriteTimeout are passed to http.Server.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes a pipeline.Runner over HTTP.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New creates a server. If runner is nil, one sharing logger is created.
// If logger is nil, output is discarded.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	switch {
	case opts.BruteForceLimit == 0:
		opts.BruteForceLimit = pipeline.DefaultBruteForceLimit
	case opts.BruteForceLimit < 0:
		opts.BruteForceLimit = 0
	}

	s := &Server{runner: runner, logger: logger, opts: opts}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.NotFound(s.handleNotFound)
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/closest", s.handleClosest)
		r.Post("/compare", s.handleCompare)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
