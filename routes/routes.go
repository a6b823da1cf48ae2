package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/opslab/lbaas-control-plane/app"
	"github.com/opslab/lbaas-control-plane/handlers"
	"github.com/opslab/lbaas-control-plane/models"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS middleware (the scaffold allows everything, matching the
	// development posture of the original service)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Logger)

	// Basic endpoints
	r.Get("/", handlers.HandleRoot)
	r.Get("/health", handlers.HandleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", authHandler.HandleToken)
			r.With(deps.AuthMiddleware.RequireAuth).Get("/users/me", authHandler.HandleMe)
		})

		// VIP management
		r.Route("/vips", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/", handlers.ListVIPsHandler())
			r.Post("/", handlers.CreateVIPHandler())
			r.Get("/{id}", handlers.GetVIPHandler())
			r.Put("/{id}", handlers.UpdateVIPHandler())
			r.Delete("/{id}", handlers.DeleteVIPHandler())
		})

		// Entitlements (admin only)
		r.Route("/entitlements", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Use(deps.AuthMiddleware.RequireRole(models.RoleAdmin))
			r.Get("/", handlers.ListEntitlementsHandler())
			r.Post("/", handlers.CreateEntitlementHandler())
		})

		// Transformers
		r.Route("/transformers", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/", handlers.ListTransformersHandler())
			r.Post("/", handlers.TransformHandler())
		})

		// Promotion (admin only)
		r.Route("/promotion", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Use(deps.AuthMiddleware.RequireRole(models.RoleAdmin))
			r.Post("/", handlers.PromoteHandler())
		})

		// Bluecat DDI
		r.Route("/bluecat", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/lookup", handlers.BluecatLookupHandler())
			r.Post("/register", handlers.BluecatRegisterHandler())
		})

		// Ansible automation (admin only)
		r.Route("/ansible", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Use(deps.AuthMiddleware.RequireRole(models.RoleAdmin))
			r.Post("/run", handlers.AnsibleRunHandler())
			r.Get("/status/{id}", handlers.AnsibleStatusHandler())
		})

		// Mock services
		r.Route("/mock", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/health", handlers.MockHealthHandler())
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
