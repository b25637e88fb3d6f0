package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// recipeColumns is the column list shared by every recipe select.
const recipeColumns = `id, author_id, name, description, cuisine, dish_type, diets,
        ingredients, instructions, calories, protein, carbs, fat, image_url,
        created_at, updated_at`

// RecipeRepository defines methods for interacting with recipes
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, req *models.RecipeSearchRequest) (*models.RecipeSearchResult, error)
}

// PostgresRecipeRepository is a PostgreSQL implementation of RecipeRepository
type PostgresRecipeRepository struct {
	db *database.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *database.Pool) RecipeRepository {
	return &PostgresRecipeRepository{
		db: db,
	}
}

// scanRecipe scans one recipe row, converting array columns and NULL optionals.
func scanRecipe(scan func(dest ...interface{}) error) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	var diets, ingredients, instructions pq.StringArray
	var imageURL sql.NullString

	err := scan(
		&recipe.ID,
		&recipe.AuthorID,
		&recipe.Name,
		&recipe.Description,
		&recipe.Cuisine,
		&recipe.DishType,
		&diets,
		&ingredients,
		&instructions,
		&recipe.Calories,
		&recipe.Protein,
		&recipe.Carbs,
		&recipe.Fat,
		&imageURL,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	recipe.Diets = []string(diets)
	recipe.Ingredients = []string(ingredients)
	recipe.Instructions = []string(instructions)
	if imageURL.Valid {
		recipe.ImageURL = imageURL.String
	}
	return recipe, nil
}

// Create adds a new recipe to the database
func (r *PostgresRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	// Start query timer
	startTime := time.Now()

	// Set created/updated timestamps
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	// Define the query
	query := fmt.Sprintf(`
        INSERT INTO %s (author_id, name, description, cuisine, dish_type, diets,
            ingredients, instructions, calories, protein, carbs, fat, image_url,
            created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id
    `, constants.TableRecipes)

	args := []interface{}{
		recipe.AuthorID,
		recipe.Name,
		recipe.Description,
		recipe.Cuisine,
		recipe.DishType,
		pq.Array(recipe.Diets),
		pq.Array(recipe.Ingredients),
		pq.Array(recipe.Instructions),
		recipe.Calories,
		recipe.Protein,
		recipe.Carbs,
		recipe.Fat,
		recipe.ImageURL,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	}

	// Execute the query
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&recipe.ID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		args,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return utils.ParseError(err)
	}

	log.Info().
		Int64("recipe_id", recipe.ID).
		Int64("author_id", recipe.AuthorID).
		Str("name", recipe.Name).
		Msg("Recipe created")

	return nil
}

// GetByID retrieves a recipe by its ID
func (r *PostgresRecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE id = $1
    `, recipeColumns, constants.TableRecipes)

	// Execute the query
	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, id).Scan)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Recipe", id)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// Update updates a recipe in the database
func (r *PostgresRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	// Start query timer
	startTime := time.Now()

	// Update the updated_at timestamp
	recipe.UpdatedAt = time.Now()

	// Define the query
	query := fmt.Sprintf(`
        UPDATE %s
        SET name = $1, description = $2, cuisine = $3, dish_type = $4, diets = $5,
            ingredients = $6, instructions = $7, calories = $8, protein = $9,
            carbs = $10, fat = $11, image_url = $12, updated_at = $13
        WHERE id = $14
    `, constants.TableRecipes)

	args := []interface{}{
		recipe.Name,
		recipe.Description,
		recipe.Cuisine,
		recipe.DishType,
		pq.Array(recipe.Diets),
		pq.Array(recipe.Ingredients),
		pq.Array(recipe.Instructions),
		recipe.Calories,
		recipe.Protein,
		recipe.Carbs,
		recipe.Fat,
		recipe.ImageURL,
		recipe.UpdatedAt,
		recipe.ID,
	}

	// Execute the query
	result, err := r.db.ExecContext(ctx, query, args...)

	// Log the query execution
	utils.LogDBQuery(
		query,
		args,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return utils.ParseError(err)
	}

	// Check if any rows were affected
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Recipe", recipe.ID)
	}

	log.Info().
		Int64("recipe_id", recipe.ID).
		Str("name", recipe.Name).
		Msg("Recipe updated")

	return nil
}

// Delete removes a recipe from the database. Reviews and plan entries that
// reference it are removed by ON DELETE CASCADE.
func (r *PostgresRecipeRepository) Delete(ctx context.Context, id int64) error {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, constants.TableRecipes)

	// Execute the query
	result, err := r.db.ExecContext(ctx, query, id)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	// Check if any rows were affected
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Recipe", id)
	}

	log.Info().
		Int64("recipe_id", id).
		Msg("Recipe deleted")

	return nil
}

// Search retrieves one page of recipes matching the resolved request, ranked
// by how many preferred catalog names each recipe matches and then by recency.
func (r *PostgresRecipeRepository) Search(ctx context.Context, req *models.RecipeSearchRequest) (*models.RecipeSearchResult, error) {
	where, rankTerms, args := buildSearchClauses(req, true)

	orderBy := "created_at DESC, id DESC"
	if len(rankTerms) > 0 {
		orderBy = fmt.Sprintf("(%s) DESC, %s", strings.Join(rankTerms, " + "), orderBy)
	}

	limitPos := len(args) + 1
	args = append(args, req.Limit, req.Offset)

	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        %s
        ORDER BY %s
        LIMIT $%d OFFSET $%d
    `, recipeColumns, constants.TableRecipes, where, orderBy, limitPos, limitPos+1)

	// Start query timer
	startTime := time.Now()

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query, args...)

	// Log the query execution
	utils.LogDBQuery(
		query,
		args,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]*models.Recipe, 0, req.Limit)
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}

	total, err := r.countSearch(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.RecipeSearchResult{Recipes: recipes, TotalItems: total}, nil
}

// countSearch returns the total match count for a search request, ignoring
// pagination and ranking.
func (r *PostgresRecipeRepository) countSearch(ctx context.Context, req *models.RecipeSearchRequest) (int, error) {
	where, _, args := buildSearchClauses(req, false)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, constants.TableRecipes, where)

	// Start query timer
	startTime := time.Now()

	var total int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&total)

	// Log the query execution
	utils.LogDBQuery(
		query,
		args,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	return total, nil
}

// buildSearchClauses translates a resolved search request into a WHERE clause,
// preference ranking terms, and the argument list. Filters constrain the
// match set; preference name lists only affect ordering, so the count query
// skips them (withRanking false) to keep its placeholder list aligned.
func buildSearchClauses(req *models.RecipeSearchRequest, withRanking bool) (where string, rankTerms []string, args []interface{}) {
	conditions := make([]string, 0, 4)

	arg := func(value interface{}) int {
		args = append(args, value)
		return len(args)
	}

	if req.Query != "" {
		pos := arg("%" + req.Query + "%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", pos, pos))
	}
	if req.Cuisine != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(cuisine) = LOWER($%d)", arg(req.Cuisine)))
	}
	if req.Diet != "" {
		conditions = append(conditions, fmt.Sprintf("$%d ILIKE ANY(diets)", arg(req.Diet)))
	}
	if req.DishType != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(dish_type) = LOWER($%d)", arg(req.DishType)))
	}

	if withRanking && len(req.PreferredCuisines) > 0 {
		pos := arg(pq.Array(req.PreferredCuisines))
		rankTerms = append(rankTerms, fmt.Sprintf("CASE WHEN LOWER(cuisine) = ANY($%d) THEN 1 ELSE 0 END", pos))
	}
	if withRanking && len(req.PreferredDiets) > 0 {
		pos := arg(pq.Array(req.PreferredDiets))
		rankTerms = append(rankTerms, fmt.Sprintf("CASE WHEN EXISTS (SELECT 1 FROM unnest(diets) AS d WHERE LOWER(d) = ANY($%d)) THEN 1 ELSE 0 END", pos))
	}
	if withRanking && len(req.PreferredDishTypes) > 0 {
		pos := arg(pq.Array(req.PreferredDishTypes))
		rankTerms = append(rankTerms, fmt.Sprintf("CASE WHEN LOWER(dish_type) = ANY($%d) THEN 1 ELSE 0 END", pos))
	}

	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return where, rankTerms, args
}
