// ABOUTME: HTTP server wiring for the myFlix API
// ABOUTME: Mounts public, token-protected, and owner-gated routes

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DavidJulianGit/MovieAPI/internal/auth"
	"github.com/DavidJulianGit/MovieAPI/internal/config"
	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// Server is the myFlix HTTP API server.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      store.Store
	hasher     *auth.PasswordHasher
	creds      *auth.CredentialVerifier
	tokens     *auth.TokenService
	httpServer *http.Server
}

// New creates a Server over the given store and token service.
func New(cfg *config.Config, logger *slog.Logger, st store.Store, tokens *auth.TokenService) *Server {
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	return &Server{
		cfg:    cfg,
		logger: logger.With("component", "api"),
		store:  st,
		hasher: hasher,
		creds:  auth.NewCredentialVerifier(st, hasher, logger),
		tokens: tokens,
	}
}

// routes builds the request mux. Protected routes sit behind the token
// middleware; account routes additionally behind the ownership gate.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /documentation", s.handleDocumentation)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /users", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	protected := auth.Middleware(s.store, s.tokens, s.logger)
	owner := auth.RequireOwner()

	// Catalog (token required)
	mux.Handle("GET /movies", protected(http.HandlerFunc(s.handleListMovies)))
	mux.Handle("GET /movies/{title}", protected(http.HandlerFunc(s.handleGetMovie)))
	mux.Handle("GET /genres/{name}", protected(http.HandlerFunc(s.handleGetGenre)))
	mux.Handle("GET /directors/{name}", protected(http.HandlerFunc(s.handleGetDirector)))

	// Account (token + ownership required)
	mux.Handle("GET /users/{email}", protected(owner(http.HandlerFunc(s.handleGetUser))))
	mux.Handle("PUT /users/{email}", protected(owner(http.HandlerFunc(s.handleUpdateUser))))
	mux.Handle("DELETE /users/{email}", protected(owner(http.HandlerFunc(s.handleDeleteUser))))
	mux.Handle("POST /users/{email}/movies/{movieID}", protected(owner(http.HandlerFunc(s.handleAddFavorite))))
	mux.Handle("DELETE /users/{email}/movies/{movieID}", protected(owner(http.HandlerFunc(s.handleRemoveFavorite))))

	return s.requestLogger(mux)
}

// Handler returns the fully assembled HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Server.HTTPAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Server.HTTPAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down HTTP server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger logs one line per request with method, path, status, and duration
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// writeJSON writes v as a JSON response with the given status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response failed", "error", err)
	}
}

// writeError writes a JSON error response with the given status
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
