package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"evently/internal/delivery/http/controllers"
	"evently/internal/delivery/http/middleware"
	"evently/internal/domain"
)

// Controllers groups the controllers served by the router.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	Health       *controllers.HealthController
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	AllowedOrigins []string
	Verifier       domain.TokenVerifier
	Logger         *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes,
// wrapped in CORS and request logging.
func NewRouter(c Controllers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(h))
	}

	mux.HandleFunc("GET /api/health", c.Health.Health)

	// Events
	mux.HandleFunc("GET /api/events", c.Event.List)
	mux.HandleFunc("GET /api/events/categories", c.Event.Categories)
	mux.HandleFunc("GET /api/events/{id}", c.Event.Get)
	mux.HandleFunc("POST /api/events", admin(c.Event.Create))
	mux.HandleFunc("PUT /api/events/{id}", admin(c.Event.Update))
	mux.HandleFunc("DELETE /api/events/{id}", admin(c.Event.Delete))

	// Registrations
	mux.HandleFunc("POST /api/registrations", c.Registration.Create)
	mux.HandleFunc("GET /api/registrations/user/{identifier}", c.Registration.ListByUser)
	mux.HandleFunc("GET /api/registrations/match/{email}", c.Registration.Match)
	mux.HandleFunc("PUT /api/registrations/{id}/status", c.Registration.UpdateStatus)
	mux.HandleFunc("GET /api/registrations/event/{eventId}", c.Registration.ListByEvent)
	mux.HandleFunc("GET /api/registrations/analytics", c.Registration.GetAnalytics)

	// Auth
	mux.HandleFunc("POST /api/auth/register", c.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)
	mux.HandleFunc("GET /api/auth/verify", auth(c.Auth.Verify))
	mux.HandleFunc("PUT /api/auth/profile", auth(c.Auth.UpdateProfile))
	mux.HandleFunc("PUT /api/auth/change-password", auth(c.Auth.ChangePassword))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.CORS(cfg.AllowedOrigins, mux))
}
