// Package server implements the rackplan HTTP API.
//
// Routes:
//
//	GET    /healthz                   liveness probe
//	POST   /api/optimize              run the pipeline, persist and return the solution
//	GET    /api/solutions             list stored solutions
//	GET    /api/solutions/{id}        fetch a stored solution document
//	GET    /api/solutions/{id}.svg    render a stored solution as SVG
//	GET    /api/solutions/{id}.txt    render the text report for a stored solution
//	DELETE /api/solutions/{id}        delete a stored solution
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/observability"
	"github.com/darkstore/rackplan/pkg/pipeline"
	"github.com/darkstore/rackplan/pkg/store"
)

// Server wires the pipeline runner and solution store into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	store  store.SolutionStore
	logger *log.Logger
}

// New creates a server. A nil store falls back to in-memory storage.
func New(runner *pipeline.Runner, st store.SolutionStore, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Handler builds the chi router with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/optimize", s.handleOptimize)
		r.Get("/solutions", s.handleList)
		r.Get("/solutions/{id}", s.handleGet)
		r.Get("/solutions/{id}.svg", s.handleSVG)
		r.Get("/solutions/{id}.txt", s.handleReport)
		r.Delete("/solutions/{id}", s.handleDelete)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// observe reports request timings to the server hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidScenario,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidSolution:
		status = http.StatusBadRequest
	case errors.ErrCodeSolutionNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	s.logger.Error("request failed", "code", code, "err", err)
	s.writeJSON(w, status, errorResponse{Code: string(code), Message: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
