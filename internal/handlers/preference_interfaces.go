// Package handlers provides HTTP request handlers for the Plateful API.
package handlers

import (
	"context"

	"github.com/plateful/Plateful_Backend/internal/models"
)

// PreferenceServiceInterface defines methods required from the preference service.
// This interface is used by the catalog and preference handlers to interact with
// the preference business logic without being tightly coupled to the implementation.
type PreferenceServiceInterface interface {
	// GetCatalog retrieves the full item list for a catalog category.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - category: The catalog category to list
	//
	// Returns:
	//   - The catalog items in catalog order
	//   - An error if retrieval fails
	GetCatalog(ctx context.Context, category models.Category) ([]*models.CatalogItem, error)

	// SearchCatalog retrieves the catalog items matching a query text with a
	// case-insensitive substring match on the name.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - category: The catalog category to search
	//   - query: The text to match against item names
	//   - limit: Maximum number of items to return
	//   - offset: Number of matching items to skip
	//
	// Returns:
	//   - The matching catalog items in catalog order
	//   - The total number of matches across all pages
	//   - An error if the search fails
	SearchCatalog(ctx context.Context, category models.Category, query string, limit, offset int) ([]*models.CatalogItem, int, error)

	// GetMergedPreferences retrieves the merged preference view for a user:
	// every catalog item in the category paired with the user's score,
	// defaulting to zero for unscored items.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - category: The catalog category
	//   - userID: The ID of the user whose view to build
	//
	// Returns:
	//   - The merged view covering the full catalog
	//   - An error if retrieval fails
	GetMergedPreferences(ctx context.Context, category models.Category, userID int64) ([]*models.MergedPreference, error)

	// ReplacePreferences replaces the user's entire preference set for one of
	// the replace-all categories.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - category: The catalog category (must not be nutrients)
	//   - userID: The ID of the user whose preferences to replace
	//   - req: The full submitted preference set
	//
	// Returns:
	//   - An error if the replacement fails
	ReplacePreferences(ctx context.Context, category models.Category, userID int64, req *models.ReplacePreferencesRequest) error

	// ClearPreferences removes all of the user's scores in one category,
	// returning the category to the all-zero state.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - category: The catalog category to clear
	//   - userID: The ID of the user whose scores to remove
	//
	// Returns:
	//   - An error if the clear fails
	ClearPreferences(ctx context.Context, category models.Category, userID int64) error

	// UpsertTargets writes nutrition targets without touching unmentioned
	// nutrients. A zero score removes the target.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - userID: The ID of the user whose targets to update
	//   - req: The submitted targets
	//
	// Returns:
	//   - An error if the update fails
	UpsertTargets(ctx context.Context, userID int64, req *models.UpsertTargetsRequest) error
}
