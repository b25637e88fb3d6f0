// Package server provides the HTTP server implementation for the Plateful
// application. It handles routing, middleware configuration, and server
// lifecycle management.
//
// The server package follows a structured initialization approach with
// dependency injection and proper lifecycle management. It connects the
// database, chooses the cache backend, wires repositories into services and
// services into handlers, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/auth"
	"github.com/plateful/Plateful_Backend/internal/cache"
	"github.com/plateful/Plateful_Backend/internal/config"
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/handlers"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/service"
	"github.com/plateful/Plateful_Backend/migrations"
	"github.com/plateful/Plateful_Backend/scripts"
)

// Handlers contains all HTTP handlers for the application.
// It centralizes handler management for consistent request processing
// and simplifies dependency injection throughout the application.
type Handlers struct {
	// PreferenceHandler manages catalog and preference endpoints
	PreferenceHandler *handlers.PreferenceHandler

	// RecipeHandler manages recipe CRUD and search endpoints
	RecipeHandler *handlers.RecipeHandler

	// ReviewHandler manages recipe review endpoints
	ReviewHandler *handlers.ReviewHandler

	// MealPlanHandler manages meal plan and planned meal endpoints
	MealPlanHandler *handlers.MealPlanHandler
}

// AuthProviders contains all authentication providers for the application.
// Token issuance lives in the external identity service, so the only provider
// here validates bearer tokens.
type AuthProviders struct {
	// JWTService handles JWT token validation
	JWTService *auth.JWTService
}

// Server represents the API server for the Plateful application.
// It encapsulates all server components and handles server lifecycle
// management, including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// cache backs the derived read views (merged preferences, upcoming plans)
	cache cache.Cache

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// authProviders contains authentication services
	authProviders *AuthProviders

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// It initializes the database, the cache backend, authentication providers,
// repositories, services, and handlers, then sets up the HTTP routes.
//
// Parameters:
//   - cfg: Application configuration including database, cache, and auth settings
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if initialization of any component fails
//
// The server initialization follows a specific order to ensure proper
// dependency management: database → cache → auth providers → repositories →
// services → handlers → routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	// Create server instance
	s := &Server{
		Config: cfg,
	}

	// Initialize components
	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := s.setupCache(); err != nil {
		return nil, fmt.Errorf("failed to set up cache: %w", err)
	}

	if err := s.setupAuthProviders(); err != nil {
		return nil, fmt.Errorf("failed to set up auth providers: %w", err)
	}

	if err := s.setupRepositories(); err != nil {
		return nil, fmt.Errorf("failed to set up repositories: %w", err)
	}

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	if err := s.setupHandlers(); err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	// Set up routes
	s.SetupRoutes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase initializes the database connection and runs migrations.
// It ensures the database schema is up-to-date and seeds the catalog tables
// with their initial reference data.
//
// Returns:
//   - An error if database connection, migration, or seeding fails
func (s *Server) setupDatabase() error {
	// Connect to the database
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	// Run migrations to create tables if they don't exist
	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seed the catalog reference data
	seeder := scripts.NewSeeder(db)
	if err := seeder.SeedDatabase(context.Background()); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}

// setupCache chooses the cache backend for the derived read views.
// A configured Redis address selects the Redis cache; otherwise the server
// falls back to the in-process cache, which is sufficient for a single
// instance.
//
// Returns:
//   - An error if the Redis connection cannot be established
func (s *Server) setupCache() error {
	if s.Config.Redis.Addr == "" {
		log.Info().Msg("No Redis address configured, using in-process cache")
		s.cache = cache.NewMemoryCache()
		return nil
	}

	redisCache, err := cache.NewRedisCache(&s.Config.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s.cache = redisCache
	return nil
}

// setupAuthProviders initializes authentication providers.
// It creates the JWT validation service used by the route middleware.
//
// Returns:
//   - An error if auth provider initialization fails
func (s *Server) setupAuthProviders() error {
	// Create JWT service
	jwtService := auth.NewJWTService(&s.Config.JWT)

	// Store providers
	s.authProviders = &AuthProviders{
		JWTService: jwtService,
	}

	return nil
}

// repositories holds all repositories used by the server.
// These provide data access abstraction for different domain entities.
var repositories struct {
	catalogRepo    repository.CatalogRepository
	preferenceRepo repository.PreferenceRepository
	recipeRepo     repository.RecipeRepository
	reviewRepo     repository.ReviewRepository
	mealPlanRepo   repository.MealPlanRepository
}

// setupRepositories initializes all data repositories.
// It creates repository instances for each domain entity using the database connection.
//
// Returns:
//   - An error if repository initialization fails
func (s *Server) setupRepositories() error {
	// Initialize repositories
	repositories.catalogRepo = repository.NewCatalogRepository(s.Db)
	repositories.preferenceRepo = repository.NewPreferenceRepository(s.Db)
	repositories.recipeRepo = repository.NewRecipeRepository(s.Db)
	repositories.reviewRepo = repository.NewReviewRepository(s.Db)
	repositories.mealPlanRepo = repository.NewMealPlanRepository(s.Db)

	return nil
}

// services holds all services used by the server.
// These provide business logic implementations for the application.
var services struct {
	preferenceService *service.PreferenceService
	searchService     *service.SearchService
	recipeService     *service.RecipeService
	reviewService     *service.ReviewService
	mealPlanService   *service.MealPlanService
}

// setupServices initializes all business services.
// It creates service instances using the previously initialized repositories
// and the selected cache backend.
//
// Returns:
//   - An error if service initialization fails or required dependencies are missing
func (s *Server) setupServices() error {
	if s.cache == nil {
		return fmt.Errorf("cache not initialized")
	}

	// Initialize services
	services.preferenceService = service.NewPreferenceService(
		repositories.catalogRepo,
		repositories.preferenceRepo,
		s.cache,
		s.Config.Preferences.CacheTTL,
	)

	services.searchService = service.NewSearchService(
		repositories.recipeRepo,
		services.preferenceService,
		s.Config.Search.PageSize,
	)

	services.recipeService = service.NewRecipeService(
		repositories.recipeRepo,
		repositories.reviewRepo,
	)

	services.reviewService = service.NewReviewService(
		repositories.reviewRepo,
		repositories.recipeRepo,
	)

	services.mealPlanService = service.NewMealPlanService(
		repositories.mealPlanRepo,
		repositories.recipeRepo,
		s.cache,
		s.Config.Preferences.UpcomingPlanTTL,
	)

	return nil
}

// setupHandlers initializes all HTTP request handlers.
// It creates handler instances using the previously initialized services.
//
// Returns:
//   - An error if handler initialization fails or required services are missing
func (s *Server) setupHandlers() error {
	// Initialize handlers with proper dependency injection
	s.Handlers = &Handlers{
		// services.preferenceService implicitly implements handlers.PreferenceServiceInterface
		PreferenceHandler: handlers.NewPreferenceHandler(services.preferenceService),
		RecipeHandler:     handlers.NewRecipeHandler(services.recipeService, services.searchService),
		ReviewHandler:     handlers.NewReviewHandler(services.reviewService),
		MealPlanHandler:   handlers.NewMealPlanHandler(services.mealPlanService),
	}

	// Validate that services are properly initialized
	if s.Handlers.PreferenceHandler == nil {
		return fmt.Errorf("failed to initialize PreferenceHandler")
	}

	return nil
}

// Start starts the HTTP server and sets up signal handling for graceful shutdown.
// It runs in a blocking mode, waiting for either server errors or shutdown signals.
//
// Returns:
//   - An error if the server fails to start or encounters an error during operation
//
// This method performs the following operations:
// 1. Starts the HTTP server in a separate goroutine
// 2. Sets up signal handling for graceful shutdown (SIGINT, SIGTERM)
// 3. Initializes periodic maintenance tasks
// 4. Blocks until an error occurs or a shutdown signal is received
// 5. Performs graceful shutdown when requested
func (s *Server) Start() error {
	// Create a channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start the server in a separate goroutine
	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	// Create a channel to listen for OS signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Set up maintenance tasks
	s.SetupMaintenanceTasks()

	// Block until an OS signal or an error is received
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		// Create a context with a timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		// Shutdown the server
		if err := s.Shutdown(ctx); err != nil {
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, closing all connections properly.
// It ensures in-flight requests are completed before shutting down.
//
// Parameters:
//   - ctx: Context with timeout for the shutdown operation
//
// Returns:
//   - An error if shutdown fails within the context timeout
//
// This method performs the following cleanup operations:
// 1. Gracefully shuts down the HTTP server, waiting for in-flight requests
// 2. Closes the cache backend
// 3. Closes the database connection
func (s *Server) Shutdown(ctx context.Context) error {
	// Shutdown the HTTP server
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	// Close the cache backend
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close cache during shutdown")
		}
	}

	// Close the database connection
	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}

// SetupMaintenanceTasks sets up periodic maintenance tasks for the server.
// It creates a background goroutine that re-warms the catalog caches at a
// fixed interval so that catalog reads after a cache expiry do not pay the
// database round trip.
func (s *Server) SetupMaintenanceTasks() {
	// Set up a ticker for maintenance tasks
	ticker := time.NewTicker(constants.CacheWarmInterval)
	go func() {
		for range ticker.C {
			// Create a context with a timeout
			ctx, cancel := context.WithTimeout(context.Background(), constants.DBConnectionTimeout)

			// Re-warm the catalog cache for every category
			for _, category := range models.PreferenceCategories() {
				if _, err := services.preferenceService.GetCatalog(ctx, category); err != nil {
					log.Error().
						Err(err).
						Str("category", string(category)).
						Msg("Failed to warm catalog cache")
				}
			}

			// Call cancel at the end of each iteration to avoid resource leak
			cancel()
		}
	}()
}
