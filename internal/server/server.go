// Package server - server.go wires the HTTP server, routes, and middleware.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/scrape"
	"github.com/jonathan/recruiter-agent/internal/session"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	logger     *zap.Logger
	sessions   *session.Manager
	controller *scrape.Controller
	structurer *llm.Structurer
	matcher    *llm.Matcher
	generator  *llm.Generator
	validate   *validator.Validate
}

// Deps carries the constructed components the server serves. Keeping the
// LLM client and controller injectable lets tests run the full HTTP
// surface without a browser or a model.
type Deps struct {
	Config     *config.Config
	Logger     *zap.Logger
	Controller *scrape.Controller
	Client     llm.Client
}

// New creates a new server instance
func New(deps Deps) *Server {
	s := &Server{
		cfg:        deps.Config,
		logger:     deps.Logger,
		sessions:   session.NewManager(),
		controller: deps.Controller,
		structurer: llm.NewStructurer(deps.Client),
		matcher:    llm.NewMatcher(deps.Client),
		generator:  llm.NewGenerator(deps.Client),
		validate:   validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session lifecycle
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDestroySession)

	// Inputs
	mux.HandleFunc("POST /sessions/{id}/resume", s.handleUploadResume)
	mux.HandleFunc("POST /sessions/{id}/targets", s.handleResolveTargets)
	mux.HandleFunc("POST /sessions/{id}/manual", s.handleManualInput)

	// Generated artifacts
	mux.HandleFunc("POST /sessions/{id}/match", s.handleMatch)
	mux.HandleFunc("POST /sessions/{id}/cover-letter", s.handleCoverLetter)
	mux.HandleFunc("POST /sessions/{id}/message", s.handleMessage)

	// Slot inspection
	mux.HandleFunc("GET /sessions/{id}/slots/{slot}", s.handleGetSlot)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", deps.Config.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Render strategies can take most of a minute per target
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured root handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// store resolves the session from the request path, writing the error
// response itself when the session does not exist.
func (s *Server) store(w http.ResponseWriter, r *http.Request) (*session.Store, bool) {
	id := r.PathValue("id")
	store, ok := s.sessions.Get(id)
	if !ok {
		s.errorStatus(w, &ErrSessionNotFound{ID: id})
		return nil, false
	}
	return store, true
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorStatus writes an error response with the status mapped from the
// error type.
func (s *Server) errorStatus(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
