package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/simple-signup-slim/internal/http/features/signup"
	"github.com/tendant/simple-signup-slim/internal/http/middleware"
	"github.com/tendant/simple-signup-slim/internal/httputil"
	"github.com/tendant/simple-signup-slim/internal/registration"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger              *slog.Logger
	RegistrationService *registration.Service
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Registration routes
	signupHandler := signup.NewHandler(cfg.Logger, cfg.RegistrationService)
	r.Post("/v1/registration/register", signupHandler.Register)
	r.Get("/v1/registration/activate/{key}", signupHandler.Activate)

	return r
}
