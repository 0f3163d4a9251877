// Package server exposes the lint engine over HTTP.
//
// Routes:
//
//	GET  /healthz    liveness probe and build version
//	GET  /v1/rules   built-in rules and whether each is enabled
//	POST /v1/lint    lint the document export in the request body
//	GET  /v1/stats   totals from the server's [observability.Counters]
//
// The counters only see events once they are registered as hooks, which
// the serve command does at startup.
//
// POST /v1/lint accepts an optional radii query parameter
// (comma-separated numbers) that replaces the configured allow-list for that
// request only.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/designlint/pkg/buildinfo"
	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/observability"
	"github.com/matzehuels/designlint/pkg/pipeline"
)

const (
	// MaxBodySize bounds POST /v1/lint request bodies.
	MaxBodySize = 10 << 20

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout = 10 * time.Second
)

// Server serves lint requests with one base configuration.
type Server struct {
	opts     lint.Options
	runner   *pipeline.Runner
	logger   *log.Logger
	counters *observability.Counters
}

// New creates a Server. opts is validated up front so a bad configuration
// fails at startup instead of on the first request.
func New(opts lint.Options, logger *log.Logger) (*Server, error) {
	engine, err := lint.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		opts:     opts,
		runner:   pipeline.NewRunner(engine, nil, logger),
		logger:   logger,
		counters: observability.NewCounters(),
	}, nil
}

// Counters returns the totals served by GET /v1/stats.
func (s *Server) Counters() *observability.Counters {
	return s.counters
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Get().Version})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", s.handleRules)
		r.Post("/lint", s.handleLint)
		r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, s.counters.Snapshot())
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests for up to ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(errors.ErrCodeNetwork, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

type ruleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	engine := s.runner.Engine
	rules := engine.Rules()
	out := make([]ruleInfo, len(rules))
	for i, rule := range rules {
		out[i] = ruleInfo{
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     engine.Enabled(rule.Name()),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": out})
}

type lintResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Violations   lint.Violations `json:"violations"`
	NodesChecked int             `json:"nodes_checked"`
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	runner := s.runner
	if raw := r.URL.Query().Get("radii"); raw != "" {
		radii, err := parseRadii(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		opts := s.opts
		opts.Radii = radii
		engine, err := lint.NewEngine(opts)
		if err != nil {
			writeError(w, err)
			return
		}
		runner = pipeline.NewRunner(engine, nil, s.logger)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	doc, err := document.Parse(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
				"error": "request body exceeds " + strconv.Itoa(MaxBodySize) + " bytes",
			})
			return
		}
		writeError(w, err)
		return
	}

	id := uuid.NewString()
	src := "request:" + id
	hooks := observability.Lint()
	hooks.OnLintStart(r.Context(), src)
	start := time.Now()
	res := runner.LintDocument(r.Context(), src, doc)
	hooks.OnLintComplete(r.Context(), src, res.NodesChecked, len(res.Violations), time.Since(start), nil)
	violations := res.Violations
	if violations == nil {
		violations = lint.Violations{}
	}
	writeJSON(w, http.StatusOK, lintResponse{
		ID:           id,
		Name:         res.Name,
		Violations:   violations,
		NodesChecked: res.NodesChecked,
	})
}

// parseRadii parses "0,4,8" into an allow-list.
func parseRadii(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	radii := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid radius %q", p)
		}
		radii = append(radii, f)
	}
	return radii, errors.ValidateRadii(radii)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	body := map[string]string{"error": errors.UserMessage(err)}
	if code := errors.GetCode(err); code != "" {
		body["code"] = string(code)
	}
	writeJSON(w, errors.HTTPStatus(err), body)
}
