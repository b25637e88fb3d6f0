package constants

// Base Routes
const (
	APIBasePath = "/api"
	HealthPath  = "/health"
	VersionPath = "/version"
)

// Catalog Routes
const (
	CatalogBasePath     = "/api/catalog"
	CatalogCategoryPath = "/api/catalog/{category}"
)

// Preference Routes
const (
	PreferencesBasePath     = "/api/preferences"
	PreferencesCategoryPath = "/api/preferences/{category}"
	NutritionTargetsPath    = "/api/preferences/nutrition"
)

// Recipe Routes
const (
	RecipesBasePath  = "/api/recipes"
	RecipeSearchPath = "/api/recipes/search"
	RecipeDetailPath = "/api/recipes/{recipeID}"
	ReviewsBasePath  = "/api/recipes/{recipeID}/reviews"
)

// Meal Plan Routes
const (
	PlansBasePath    = "/api/plans"
	PlanUpcomingPath = "/api/plans/upcoming"
	PlanDetailPath   = "/api/plans/{planID}"
	PlanEntriesPath  = "/api/plans/{planID}/entries"
)
