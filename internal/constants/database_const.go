// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including table names and column names. These constants ensure consistent
// and correct database access patterns throughout the application, reducing
// the risk of SQL errors and simplifying database schema changes.
package constants

// Table Names define the names of database tables used in the application.
// Using these constants instead of string literals ensures consistency
// and makes database schema changes easier to implement.
const (
	// TableCuisines is the name of the table storing the cuisine catalog.
	TableCuisines = "cuisines"

	// TableDiets is the name of the table storing the diet catalog.
	TableDiets = "diets"

	// TableDishTypes is the name of the table storing the dish type catalog.
	TableDishTypes = "dish_types"

	// TableNutrients is the name of the table storing the nutrient catalog.
	TableNutrients = "nutrients"

	// TableCuisinePreferences is the name of the table storing per-user cuisine scores.
	TableCuisinePreferences = "cuisine_preferences"

	// TableDietPreferences is the name of the table storing per-user diet scores.
	TableDietPreferences = "diet_preferences"

	// TableDishTypePreferences is the name of the table storing per-user dish type scores.
	TableDishTypePreferences = "dish_type_preferences"

	// TableNutritionTargets is the name of the table storing per-user nutrition targets.
	TableNutritionTargets = "nutrition_targets"

	// TableRecipes is the name of the table storing recipes.
	TableRecipes = "recipes"

	// TableRecipeReviews is the name of the table storing recipe reviews.
	TableRecipeReviews = "recipe_reviews"

	// TableMealPlans is the name of the table storing meal plan metadata.
	TableMealPlans = "meal_plans"

	// TableMealPlanEntries is the name of the table storing individual planned meals.
	TableMealPlanEntries = "meal_plan_entries"
)

// Common Column Names define frequently used database column names.
// These constants ensure consistent column name usage in SQL queries.
const (
	// ColumnID is the generic primary key column name.
	ColumnID = "id"

	// ColumnUserID is the column name for user identifier foreign keys.
	ColumnUserID = "user_id"

	// ColumnItemID is the column name for catalog item foreign keys in preference tables.
	ColumnItemID = "item_id"

	// ColumnScore is the column name for preference scores.
	ColumnScore = "score"

	// ColumnName is the column name for catalog item and recipe names.
	ColumnName = "name"

	// ColumnRecipeID is the column name for recipe identifier foreign keys.
	ColumnRecipeID = "recipe_id"

	// ColumnPlanID is the column name for meal plan identifier foreign keys.
	ColumnPlanID = "plan_id"

	// ColumnAuthorID is the column name for recipe author foreign keys.
	ColumnAuthorID = "author_id"

	// ColumnCreatedAt is the column name for creation timestamps.
	ColumnCreatedAt = "created_at"

	// ColumnUpdatedAt is the column name for last modification timestamps.
	ColumnUpdatedAt = "updated_at"
)
