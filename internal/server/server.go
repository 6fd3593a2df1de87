package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hbnb/hbnb-auth/internal/auth"
	"github.com/hbnb/hbnb-auth/internal/config"
	"github.com/hbnb/hbnb-auth/internal/http/handlers"
	"github.com/hbnb/hbnb-auth/internal/middleware"
	"github.com/hbnb/hbnb-auth/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore, logger *zap.SugaredLogger) *Server {
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	handler := middleware.CORS(cfg.CORSOrigins,
		middleware.Logging(logger, Routes(store, hasher, tokens, logger)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Routes builds the route table. Each group declares its permission
// level up front: public, any valid token, or admin claim required.
func Routes(store storage.UserStore, hasher *auth.Hasher, tokens *auth.TokenManager, logger *zap.SugaredLogger) http.Handler {
	authHandler := handlers.NewAuthHandler(store, hasher, tokens, logger)
	userHandler := handlers.NewUserHandler(store, hasher, logger)
	health := handlers.NewHealthHandler(time.Now())

	r := chi.NewRouter()

	// Public
	r.Get("/health", health.Handle)
	r.Post("/api/v1/auth/login", authHandler.Login)
	r.Post("/api/v1/users", userHandler.Register)

	// Any authenticated caller; per-user routes add the ownership gate
	// inside the handler.
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth(tokens))
		authed.Get("/api/v1/protected", authHandler.Protected)
		authed.Get("/api/v1/users/{id}", userHandler.Get)
		authed.Put("/api/v1/users/{id}", userHandler.Update)
		authed.Delete("/api/v1/users/{id}", userHandler.Delete)

		// Admin claim required.
		authed.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Get("/api/v1/users", userHandler.List)
			admin.Put("/api/v1/users/{id}/admin", userHandler.SetAdmin)
		})
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
