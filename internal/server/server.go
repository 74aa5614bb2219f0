// Package server exposes the playground HTTP API: JSON/YAML/TOON conversion
// with token comparison, a fixed example catalog, and an optional LLM
// round-trip test.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mcncl/toonvert/internal/config"
	"github.com/mcncl/toonvert/internal/encoder"
	"github.com/mcncl/toonvert/internal/logger"
	"github.com/mcncl/toonvert/internal/tokens"
)

//go:embed static
var staticFS embed.FS

// Version is reported by the health endpoint.
const Version = "0.1.0"

const (
	requestTimeout    = 60 * time.Second
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Completer is the LLM dependency of the llm-test endpoint.
type Completer interface {
	Complete(ctx context.Context, prompt, data string) (string, error)
	Model() string
}

// Server holds the playground's dependencies.
type Server struct {
	enc      *encoder.Encoder
	counter  *tokens.Counter
	llm      Completer
	llmModel string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithCompleter injects an LLM client, bypassing the environment-based
// construction. Used by tests.
func WithCompleter(c Completer) ServerOption {
	return func(s *Server) {
		s.llm = c
	}
}

// WithCounter replaces the token counter. Used by tests to force the
// estimation path.
func WithCounter(c *tokens.Counter) ServerOption {
	return func(s *Server) {
		s.counter = c
	}
}

// New builds a Server from configuration.
func New(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		enc: encoder.New(
			encoder.WithIndent(cfg.Encoder.Indent),
			encoder.WithMaxDepth(cfg.Encoder.MaxDepth),
		),
		counter:  tokens.NewCounter(),
		llmModel: cfg.LLM.Model,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router assembles the chi router with the playground routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger,
		middleware.Recoverer,
		middleware.Timeout(requestTimeout),
		headersMiddleware,
	)

	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/examples", s.handleExamples)
		r.Post("/llm-test", s.handleLLMTest)
		r.Get("/health", s.handleHealth)
	})

	return r
}

// requestLogger logs one line per completed request with status and timing.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Infow("request complete",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}

// headersMiddleware sets the JSON content type on API responses.
func headersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/api/" {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// Serve runs the HTTP server on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("playground listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("forced shutdown: %v", err)
			return srv.Close()
		}
		logger.Infof("playground stopped")
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "playground page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": Version,
	})
}

// writeJSON writes v as a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to write response: %v", err)
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"detail":  detail,
	})
}
