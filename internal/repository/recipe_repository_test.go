package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// setupRecipeRepositoryTest creates a new test database connection and mock
func setupRecipeRepositoryTest(t *testing.T) (repository.RecipeRepository, sqlmock.Sqlmock, func()) {
	// Create a new SQL mock database
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create a database pool with the mock database
	dbPool := &database.Pool{DB: db}

	// Create a new repository with the mocked database
	repo := repository.NewRecipeRepository(dbPool)

	// Return the repository, mock and a cleanup function
	return repo, mock, func() {
		db.Close()
	}
}

// recipeRows returns a sqlmock row set with the full recipe column list.
func recipeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "author_id", "name", "description", "cuisine", "dish_type", "diets",
		"ingredients", "instructions", "calories", "protein", "carbs", "fat",
		"image_url", "created_at", "updated_at",
	})
}

func testRecipe() *models.Recipe {
	now := time.Now()
	return &models.Recipe{
		ID:           1,
		AuthorID:     100,
		Name:         "Green Curry",
		Description:  "A fragrant Thai curry",
		Cuisine:      "Thai",
		DishType:     "Main course",
		Diets:        []string{"Vegetarian"},
		Ingredients:  []string{"coconut milk", "green curry paste"},
		Instructions: []string{"Simmer the paste", "Add coconut milk"},
		Calories:     520,
		Protein:      12,
		Carbs:        40,
		Fat:          30,
		ImageURL:     "https://cdn.example.com/green-curry.jpg",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRecipeRepository_Create(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	recipe := testRecipe()
	recipe.ID = 0

	mock.ExpectQuery("INSERT INTO recipes").
		WithArgs(
			recipe.AuthorID, recipe.Name, recipe.Description, recipe.Cuisine,
			recipe.DishType, pq.Array(recipe.Diets), pq.Array(recipe.Ingredients),
			pq.Array(recipe.Instructions), recipe.Calories, recipe.Protein,
			recipe.Carbs, recipe.Fat, recipe.ImageURL,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	// Execute the method being tested
	err := repo.Create(context.Background(), recipe)

	// Assert the results
	assert.NoError(t, err)
	assert.Equal(t, int64(42), recipe.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_GetByID(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	want := testRecipe()
	rows := recipeRows().AddRow(
		want.ID, want.AuthorID, want.Name, want.Description, want.Cuisine,
		want.DishType, pq.StringArray(want.Diets), pq.StringArray(want.Ingredients),
		pq.StringArray(want.Instructions), want.Calories, want.Protein,
		want.Carbs, want.Fat, want.ImageURL, want.CreatedAt, want.UpdatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM recipes WHERE id").
		WithArgs(want.ID).
		WillReturnRows(rows)

	// Execute the method being tested
	recipe, err := repo.GetByID(context.Background(), want.ID)

	// Assert the results
	assert.NoError(t, err)
	assert.Equal(t, want.Name, recipe.Name)
	assert.Equal(t, want.Diets, recipe.Diets)
	assert.Equal(t, want.Ingredients, recipe.Ingredients)
	assert.Equal(t, want.ImageURL, recipe.ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_GetByID_NotFound(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM recipes WHERE id").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	// Execute the method being tested
	recipe, err := repo.GetByID(context.Background(), 999)

	// Assert the results
	assert.Error(t, err)
	assert.Nil(t, recipe)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Update_NotFound(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	recipe := testRecipe()
	recipe.ID = 999

	mock.ExpectExec("UPDATE recipes SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Execute the method being tested
	err := repo.Update(context.Background(), recipe)

	// Assert the results
	assert.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Delete(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM recipes WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Execute the method being tested
	err := repo.Delete(context.Background(), 1)

	// Assert the results
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Search_TextOnly(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	want := testRecipe()
	rows := recipeRows().AddRow(
		want.ID, want.AuthorID, want.Name, want.Description, want.Cuisine,
		want.DishType, pq.StringArray(want.Diets), pq.StringArray(want.Ingredients),
		pq.StringArray(want.Instructions), want.Calories, want.Protein,
		want.Carbs, want.Fat, want.ImageURL, want.CreatedAt, want.UpdatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM recipes WHERE \\(name ILIKE (.+) OR description ILIKE (.+)\\)").
		WithArgs("%curry%", 12, 0).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM recipes WHERE").
		WithArgs("%curry%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// Execute the method being tested
	result, err := repo.Search(context.Background(), &models.RecipeSearchRequest{
		Query: "curry",
		Limit: 12,
	})

	// Assert the results
	assert.NoError(t, err)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Green Curry", result.Recipes[0].Name)
	assert.Equal(t, 1, result.TotalItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Search_FiltersAndWeights(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupRecipeRepositoryTest(t)
	defer cleanup()

	req := &models.RecipeSearchRequest{
		Cuisine:            "Thai",
		PreferredDiets:     []string{"vegan", "vegetarian"},
		PreferredDishTypes: []string{"main course"},
		Limit:              12,
		Offset:             12,
	}

	// Hard filters land in WHERE, preference weights only in ORDER BY
	mock.ExpectQuery("SELECT (.+) FROM recipes WHERE LOWER\\(cuisine\\) = LOWER(.+) ORDER BY \\(CASE WHEN").
		WithArgs("Thai", pq.Array(req.PreferredDiets), pq.Array(req.PreferredDishTypes), 12, 12).
		WillReturnRows(recipeRows())
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM recipes WHERE LOWER\\(cuisine\\)").
		WithArgs("Thai").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// Execute the method being tested
	result, err := repo.Search(context.Background(), req)

	// Assert the results
	assert.NoError(t, err)
	assert.Empty(t, result.Recipes)
	assert.Equal(t, 0, result.TotalItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}
