package cache

import "fmt"

// Key builders for the derived views stored in the cache. Keeping them in
// one place makes invalidation sites easy to audit.

// PreferenceKey is the cache key for a user's merged preference view in one
// catalog category.
func PreferenceKey(category string, userID int64) string {
	return fmt.Sprintf("prefs:%s:user:%d", category, userID)
}

// UpcomingPlanKey is the cache key for a user's upcoming meal plan view.
func UpcomingPlanKey(userID int64) string {
	return fmt.Sprintf("plans:upcoming:user:%d", userID)
}

// CatalogKey is the cache key for the full item list of a catalog category.
// Catalog contents change rarely, so these entries use longer TTLs.
func CatalogKey(category string) string {
	return fmt.Sprintf("catalog:%s", category)
}
