// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings, establish boundaries for resource usage, and define the bounds of
// user-tunable preference scores. Changes to these values may significantly
// impact application behavior and performance.
package constants

// Default Pagination Values define the parameters used for paginated responses.
// These constants ensure consistent and reasonable pagination behavior.
const (
	// DefaultPage is the default page number for paginated results when not specified.
	DefaultPage = 1

	// DefaultPageSize is the default number of items per page when not specified.
	DefaultPageSize = 20

	// MaxPageSize is the maximum allowable page size to prevent excessive resource usage.
	MaxPageSize = 100

	// MinPageSize is the minimum allowable page size.
	MinPageSize = 1

	// SearchPageSize is the fixed page size for recipe search results.
	SearchPageSize = 12
)

// Default Configuration Values define fallback settings when not specified in configuration.
// These constants provide sensible defaults for core application settings.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultRedisAddr is the default Redis server address.
	DefaultRedisAddr = "localhost:6379"

	// DefaultCacheKeyPrefix is the default namespace prefix for cache keys.
	DefaultCacheKeyPrefix = "plateful:"
)

// Environment Types define the recognized application running environments.
// These constants are used to adjust behavior based on the deployment environment.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Size Limits define the maximum allowed sizes for request payloads.
// These constants help prevent denial of service via excessive resource consumption.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Preference Score Bounds define the valid score ranges per catalog category.
// A score of zero always means "no preference"; for the replace-all
// categories a zero score is never persisted.
const (
	// MaxCuisineScore is the highest strength a user can assign a cuisine.
	MaxCuisineScore = 5

	// MaxDietScore is the highest strength a user can assign a diet.
	MaxDietScore = 3

	// MaxDishTypeScore is the highest strength a user can assign a dish type.
	MaxDishTypeScore = 3

	// MaxNutrientTarget is the highest per-meal target level for a nutrient.
	MaxNutrientTarget = 10

	// MinRating and MaxRating bound recipe review ratings.
	MinRating = 1
	MaxRating = 5
)

// Auth Constants define values related to token handling.
const (
	// DefaultJWTIssuer is the issuer claim value expected on JWT tokens.
	DefaultJWTIssuer = "plateful-api"

	// BearerTokenPrefix is the prefix for Authorization header bearer tokens.
	BearerTokenPrefix = "Bearer "
)
