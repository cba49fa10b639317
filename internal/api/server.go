// Package api provides the HTTP API server and handlers for the StudyHall
// application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/studyhallapp/studyhall-server/internal/auth"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
	"github.com/studyhallapp/studyhall-server/internal/ratelimit"
	"github.com/studyhallapp/studyhall-server/internal/store/sqlite"
	"github.com/studyhallapp/studyhall-server/internal/validation"
)

// Config holds the server-level knobs handlers need.
type Config struct {
	// Production switches the Secure flag on the session cookie.
	Production bool
	// CORSOrigins lists origins allowed to make credentialed requests.
	CORSOrigins []string
	// SessionDuration is the session cookie max-age.
	SessionDuration time.Duration
	// LoginPerMinute and LoginBurst tune the per-IP login limiter.
	LoginPerMinute int
	LoginBurst     int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store        *sqlite.Store
	tokens       *auth.TokenService
	validator    *validation.Validator
	loginLimiter *ratelimit.KeyedRateLimiter
	cfg          Config
	router       *chi.Mux
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *sqlite.Store, tokens *auth.TokenService, cfg Config, logger *slog.Logger) *Server {
	if cfg.LoginPerMinute <= 0 {
		cfg.LoginPerMinute = 20
	}
	if cfg.LoginBurst <= 0 {
		cfg.LoginBurst = 5
	}

	s := &Server{
		store:        store,
		tokens:       tokens,
		validator:    validation.New(),
		loginLimiter: NewRateLimiter(cfg.LoginPerMinute, time.Minute, cfg.LoginBurst),
		cfg:          cfg,
		router:       chi.NewRouter(),
		logger:       logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-held resources (the login limiter's cleanup goroutine).
func (s *Server) Close() {
	s.loginLimiter.Stop()
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The web client sends the session cookie cross-origin, so CORS must be
	// credentialed and origin-listed (no wildcard).
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Get("/init-db", s.handleInitDB)

	s.router.Route("/api", func(r chi.Router) {
		// Auth endpoints (public except /me).
		r.Route("/auth", func(r chi.Router) {
			r.With(RateLimitMiddleware(s.loginLimiter, s.logger)).Post("/login", s.handleLogin)
			r.Post("/register", s.handleRegister)
			r.Post("/logout", s.handleLogout)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Get("/me", s.handleGetCurrentUser)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListCategories)
			r.Post("/", s.handleCreateCategory)
			r.Put("/{id}", s.handleUpdateCategory)
			r.Delete("/{id}", s.handleDeleteCategory)
		})

		// The client calls these both "events" and "lessons".
		r.Route("/events", s.eventRoutes)
		r.Route("/lessons", s.eventRoutes)

		r.Route("/assignments", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListAssignments)
			r.Post("/", s.handleCreateAssignment)
			r.Put("/{id}", s.handleUpdateAssignment)
			r.Delete("/{id}", s.handleDeleteAssignment)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListTodos)
			r.Post("/", s.handleCreateTodo)
			r.Put("/{id}", s.handleUpdateTodo)
			r.Delete("/{id}", s.handleDeleteTodo)
		})

		r.Route("/flashcard-topics", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListTopics)
			r.Post("/", s.handleCreateTopic)
			r.Get("/{id}/flashcards", s.handleListTopicFlashcards)
			r.Put("/{id}", s.handleUpdateTopic)
			r.Delete("/{id}", s.handleDeleteTopic)
		})

		r.Route("/flashcards", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListFlashcards)
			r.Post("/", s.handleCreateFlashcard)
			r.Put("/{id}", s.handleUpdateFlashcard)
			r.Delete("/{id}", s.handleDeleteFlashcard)
		})
	})
}

// eventRoutes registers the event handlers on a sub-router; used for both
// the /events and /lessons mounts.
func (s *Server) eventRoutes(r chi.Router) {
	r.Use(s.requireAuth)
	r.Get("/", s.handleListEvents)
	r.Post("/", s.handleCreateEvent)
	r.Put("/{id}", s.handleUpdateEvent)
	r.Delete("/{id}", s.handleDeleteEvent)
}

// handleHealthCheck reports liveness plus database reachability.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		response.InternalError(w, "database unreachable", s.logger)
		return
	}
	response.Success(w, map[string]string{"status": "ok"}, s.logger)
}

// handleInitDB re-runs the idempotent schema statements.
// GET /init-db.
func (s *Server) handleInitDB(w http.ResponseWriter, r *http.Request) {
	if err := s.store.InitSchema(r.Context()); err != nil {
		s.logger.Error("Schema init failed", "error", err)
		response.InternalError(w, "database initialization failed", s.logger)
		return
	}
	response.Success(w, map[string]string{"status": "initialized"}, s.logger)
}
