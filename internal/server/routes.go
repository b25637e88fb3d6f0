package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/middleware"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// SetupRoutes configures the routes for the application.
// It creates a router hierarchy with middleware and grouped routes
// according to functionality for organized API structure.
//
// The configured routes include:
// - Health check and version endpoints (unprotected)
// - Catalog browsing endpoints (unprotected)
// - Recipe browsing, search, and review listing (unprotected)
// - Preference management endpoints (JWT protected)
// - Recipe, review, and meal plan writes (JWT protected)
//
// Route protection is handled through middleware for authenticated endpoints.
func (s *Server) SetupRoutes() {
	// Create router
	r := chi.NewRouter()

	// Get allowed origins from environment or use configured values
	allowedOrigins := getAllowedOrigins(s.Config.CORS.AllowedOrigins)

	// Custom CORS middleware that applies to all routes
	// This ensures CORS headers are applied properly and consistently
	r.Use(corsMiddleware(allowedOrigins))

	// Base middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())

	// Request logging is opt-in through configuration
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			// Check database connection
			err := s.Db.HealthCheck(r.Context())
			if err != nil {
				log.Error().Err(err).Msg("Health check failed")
				utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy", nil)
				return
			}

			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog routes (public, read-only reference data)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/{category}", s.Handlers.PreferenceHandler.GetCatalog)
		})

		// Preference routes (all protected)
		r.Route("/preferences", func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.authProviders.JWTService))
			r.Use(chimiddleware.NoCache)

			// Nutrition targets use upsert semantics and their own endpoint
			r.Put("/nutrition", s.Handlers.PreferenceHandler.UpsertTargets)

			r.Get("/{category}", s.Handlers.PreferenceHandler.GetPreferences)
			r.Put("/{category}", s.Handlers.PreferenceHandler.ReplacePreferences)
			r.Delete("/{category}", s.Handlers.PreferenceHandler.ClearPreferences)
		})

		// Recipe routes
		r.Route("/recipes", func(r chi.Router) {
			// Public recipe endpoints; search attaches the user when a valid
			// token is present so preference weighting can apply
			r.Group(func(r chi.Router) {
				r.Use(middleware.OptionalJWTAuth(s.authProviders.JWTService))
				r.Get("/search", s.Handlers.RecipeHandler.SearchRecipes)
			})
			r.Get("/{recipeID}", s.Handlers.RecipeHandler.GetRecipe)
			r.Get("/{recipeID}/reviews", s.Handlers.ReviewHandler.ListReviews)

			// Protected recipe endpoints
			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(s.authProviders.JWTService))

				r.Post("/", s.Handlers.RecipeHandler.CreateRecipe)
				r.Put("/{recipeID}", s.Handlers.RecipeHandler.UpdateRecipe)
				r.Patch("/{recipeID}", s.Handlers.RecipeHandler.UpdateRecipe)
				r.Delete("/{recipeID}", s.Handlers.RecipeHandler.DeleteRecipe)
				r.Post("/{recipeID}/reviews", s.Handlers.ReviewHandler.AddReview)
			})
		})

		// Review deletion addresses the review directly (protected)
		r.Route("/reviews", func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.authProviders.JWTService))

			r.Delete("/{reviewID}", s.Handlers.ReviewHandler.DeleteReview)
		})

		// Meal plan routes (all protected, plans are private to their owner)
		r.Route("/plans", func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.authProviders.JWTService))
			r.Use(chimiddleware.NoCache)

			r.Post("/", s.Handlers.MealPlanHandler.CreatePlan)
			r.Get("/", s.Handlers.MealPlanHandler.ListPlans)
			r.Get("/upcoming", s.Handlers.MealPlanHandler.GetUpcoming)
			r.Get("/{planID}", s.Handlers.MealPlanHandler.GetPlan)
			r.Delete("/{planID}", s.Handlers.MealPlanHandler.DeletePlan)
			r.Post("/{planID}/entries", s.Handlers.MealPlanHandler.AddEntry)
			r.Delete("/{planID}/entries/{entryID}", s.Handlers.MealPlanHandler.DeleteEntry)
		})
	})

	// Set the router
	s.router = r
}

// GetRouter returns the configured router.
//
// Returns:
//   - The chi.Router implementation used by the server
//
// This method is primarily used for testing and for
// integrating the router with other components.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

// corsMiddleware creates a custom CORS middleware with the specified allowed origins.
// It handles Cross-Origin Resource Sharing to allow browsers to safely access the API
// from different domains while protecting against unauthorized cross-origin requests.
//
// Parameters:
//   - allowedOrigins: A list of origins that are allowed to access the API
//
// Returns:
//   - A middleware function that adds CORS headers to responses
//
// The middleware checks incoming requests against the allowed origins list,
// adds appropriate CORS headers to responses, and handles OPTIONS preflight
// requests. It supports credentials mode for authenticated cross-origin requests.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if the request's origin is in our allowed list
			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					// Set CORS headers for all responses, not just OPTIONS
					w.Header().Set("Access-Control-Allow-Origin", origin)

					// These headers are essential for credentials mode
					w.Header().Set("Access-Control-Allow-Credentials", "true")

					// For non-OPTIONS requests, just set these headers and continue
					if r.Method != "OPTIONS" {
						next.ServeHTTP(w, r)
						return
					}

					// Handle OPTIONS preflight requests
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "300")

					// Respond to preflight request
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			// If origin is not allowed, continue without setting CORS headers
			next.ServeHTTP(w, r)
		})
	}
}

// getAllowedOrigins reads allowed CORS origins from the environment or falls
// back to the configured values. This provides flexibility to adjust allowed
// origins without recompiling the application.
//
// Parameters:
//   - configured: The origins from the loaded configuration
//
// Returns:
//   - A slice of strings representing allowed origins for CORS
//
// The function first checks for an ALLOWED_ORIGINS environment variable.
// If set, it splits the value by comma and uses the resulting list.
// Otherwise, it uses the configured origins.
func getAllowedOrigins(configured []string) []string {
	// Check if ALLOWED_ORIGINS is set in environment
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")

	// If ALLOWED_ORIGINS is set, use it
	if allowedOriginsEnv != "" {
		// Split by comma and trim spaces
		origins := strings.Split(allowedOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		log.Info().Strs("allowed_origins", origins).Msg("Using CORS allowed origins from environment")
		return origins
	}

	log.Info().Strs("allowed_origins", configured).Msg("Using configured CORS allowed origins")
	return configured
}
