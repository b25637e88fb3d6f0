package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Database Timeouts
const (
	DBConnectionTimeout  = 10 * time.Second
	DBHealthCheckTimeout = 5 * time.Second
	DBConnMaxLifetime    = 1 * time.Hour
	DBConnMaxIdleTime    = 30 * time.Minute
)

// Authentication Timeouts
const (
	DefaultJWTExpiry = 15 * time.Minute
)

// Cache Timeouts
const (
	CacheConnectTimeout = 5 * time.Second
)

// Maintenance Intervals
const (
	// CacheWarmInterval is how often the catalog caches are re-warmed in the
	// background so the first request after an expiry does not pay the
	// database round trip.
	CacheWarmInterval = 15 * time.Minute
)

// Cache TTLs define how long derived views are memoized. The merged
// preference views are short-lived by design; preference writes also
// invalidate them explicitly.
const (
	DefaultPreferenceCacheTTL = 5 * time.Minute
	DefaultUpcomingPlanTTL    = 10 * time.Minute
)
