// Package models provides data structures and operations for the Plateful application.
// This file contains the recipe search query shapes consumed by the search
// gateway.
package models

// RecipeSearchQuery is a user-facing search submission. For each category the
// caller may set an explicit filter or ask for their saved preferences to be
// used as a ranking signal. The UI prevents both being set at once; if a
// query nonetheless carries both for a category, the explicit filter wins.
type RecipeSearchQuery struct {
	// Query is the free-text search term matched against name and description.
	Query string `json:"q"`

	// Page is the zero-based page index. Page size is a fixed constant.
	Page int `json:"page" validate:"gte=0"`

	// Explicit per-category filters (hard equality constraints).
	Cuisine  string `json:"cuisine"`
	Diet     string `json:"diet"`
	DishType string `json:"dish_type"`

	// Use-my-preferences flags. When set for a category, the user's merged
	// preference view biases ranking instead of filtering.
	UseCuisinePreferences  bool `json:"use_cuisine_preferences"`
	UseDietPreferences     bool `json:"use_diet_preferences"`
	UseDishTypePreferences bool `json:"use_dish_type_preferences"`
}

// RecipeSearchRequest is the resolved, store-level search request produced by
// the search gateway: free text, hard filters, preference weights as ordered
// name lists (highest score first), and absolute pagination.
type RecipeSearchRequest struct {
	Query string

	// Hard equality filters. Empty means unconstrained.
	Cuisine  string
	Diet     string
	DishType string

	// Preferred catalog names (score > 0) used to bias ranking. A recipe
	// matching any preferred name ranks ahead of one matching none.
	PreferredCuisines  []string
	PreferredDiets     []string
	PreferredDishTypes []string

	Limit  int
	Offset int
}

// RecipeSearchResult bundles one page of matches with the total match count.
type RecipeSearchResult struct {
	Recipes    []*Recipe `json:"recipes"`
	TotalItems int       `json:"total_items"`
}
