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

	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// setupMealPlanRepositoryTest creates a new test database connection and mock
func setupMealPlanRepositoryTest(t *testing.T) (repository.MealPlanRepository, sqlmock.Sqlmock, func()) {
	// Create a new SQL mock database
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create a database pool with the mock database
	dbPool := &database.Pool{DB: db}

	// Create a new repository with the mocked database
	repo := repository.NewMealPlanRepository(dbPool)

	// Return the repository, mock and a cleanup function
	return repo, mock, func() {
		db.Close()
	}
}

func TestMealPlanRepository_Create(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	plan := &models.MealPlan{
		UserID:    100,
		Name:      "Week of March 3rd",
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("INSERT INTO meal_plans").
		WithArgs(plan.UserID, plan.Name, plan.StartDate, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	// Execute the method being tested
	err := repo.Create(context.Background(), plan)

	// Assert the results
	assert.NoError(t, err)
	assert.Equal(t, int64(5), plan.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_GetByID_NotFound(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, user_id, name, start_date, created_at, updated_at FROM meal_plans WHERE id").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	// Execute the method being tested
	plan, err := repo.GetByID(context.Background(), 999)

	// Assert the results
	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_ListByUser(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	userID := int64(100)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "start_date", "created_at", "updated_at"}).
		AddRow(2, userID, "Next week", now.AddDate(0, 0, 7), now, now).
		AddRow(1, userID, "This week", now, now, now)

	mock.ExpectQuery("SELECT id, user_id, name, start_date, created_at, updated_at FROM meal_plans WHERE user_id").
		WithArgs(userID).
		WillReturnRows(rows)

	// Execute the method being tested
	plans, err := repo.ListByUser(context.Background(), userID)

	// Assert the results
	assert.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Next week", plans[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_AddEntry(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	entry := &models.MealPlanEntry{
		PlanID:   5,
		RecipeID: 42,
		PlanDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Slot:     models.SlotDinner,
	}

	mock.ExpectQuery("INSERT INTO meal_plan_entries").
		WithArgs(entry.PlanID, entry.RecipeID, entry.PlanDate, entry.Slot).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	// Execute the method being tested
	err := repo.AddEntry(context.Background(), entry)

	// Assert the results
	assert.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_AddEntry_DuplicateSlot(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	entry := &models.MealPlanEntry{
		PlanID:   5,
		RecipeID: 42,
		PlanDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Slot:     models.SlotDinner,
	}

	mock.ExpectQuery("INSERT INTO meal_plan_entries").
		WillReturnError(&pq.Error{Code: pq.ErrorCode(constants.PGErrorDuplicateConstraint)})

	// Execute the method being tested
	err := repo.AddEntry(context.Background(), entry)

	// Assert the results
	assert.Error(t, err)
	assert.True(t, utils.IsDuplicateError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_ListEntries(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	planID := int64(5)
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "plan_id", "recipe_id", "plan_date", "slot", "name"}).
		AddRow(1, planID, 42, day, models.SlotBreakfast, "Overnight Oats").
		AddRow(2, planID, 43, day, models.SlotDinner, "Green Curry")

	mock.ExpectQuery("SELECT e.id, e.plan_id, e.recipe_id, e.plan_date, e.slot, r.name FROM meal_plan_entries e").
		WithArgs(planID).
		WillReturnRows(rows)

	// Execute the method being tested
	entries, err := repo.ListEntries(context.Background(), planID)

	// Assert the results
	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Overnight Oats", entries[0].RecipeName)
	assert.Equal(t, models.SlotDinner, entries[1].Slot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_UpcomingEntries(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	userID := int64(100)
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 0, 7)

	rows := sqlmock.NewRows([]string{"id", "plan_id", "recipe_id", "plan_date", "slot", "name"}).
		AddRow(1, 5, 42, from, models.SlotLunch, "Green Curry")

	mock.ExpectQuery("SELECT e.id, e.plan_id, e.recipe_id, e.plan_date, e.slot, r.name FROM meal_plan_entries e JOIN meal_plans p").
		WithArgs(userID, from, until).
		WillReturnRows(rows)

	// Execute the method being tested
	entries, err := repo.UpcomingEntries(context.Background(), userID, from, until)

	// Assert the results
	assert.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].RecipeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_DeleteEntry_NotFound(t *testing.T) {
	// Set up the test
	repo, mock, cleanup := setupMealPlanRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM meal_plan_entries WHERE id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Execute the method being tested
	err := repo.DeleteEntry(context.Background(), 999)

	// Assert the results
	assert.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
