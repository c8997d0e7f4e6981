package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/auth"
	"github.com/eduhire/placement-be/internal/config"
	"github.com/eduhire/placement-be/internal/http/handlers"
	"github.com/eduhire/placement-be/internal/middleware"
	"github.com/eduhire/placement-be/internal/observability"
	"github.com/eduhire/placement-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, log *logrus.Logger) (*Server, error) {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL())
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics()
	authn := middleware.RequireAuth(tokens, log)

	router := mux.NewRouter()
	router.Use(metrics.Middleware(), middleware.Logging(log), middleware.CORS(cfg.CORSOrigins))

	handlers.NewHealthHandler(time.Now()).Register(router)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	handlers.NewAuthHandler(store, tokens, hasher, log).Register(api, authn)
	handlers.NewJobsHandler(store, log).Register(api, authn)
	handlers.NewApplicationsHandler(store, store, log).Register(api, authn)
	handlers.NewFeedbackHandler(store, log).Register(api, authn)
	handlers.NewLogsHandler(store, log).Register(api)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}, nil
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
