package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/Plateful_Backend/internal/cache"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

func setupMealPlanService(t *testing.T) (*MealPlanService, *MockMealPlanRepository, *MockRecipeRepository) {
	t.Helper()

	planRepo := NewMockMealPlanRepository()
	recipeRepo := NewMockRecipeRepository()
	memCache := cache.NewMemoryCache()
	t.Cleanup(func() { memCache.Close() })

	svc := NewMealPlanService(planRepo, recipeRepo, memCache, time.Minute)
	return svc, planRepo, recipeRepo
}

func seedRecipe(t *testing.T, recipeRepo *MockRecipeRepository, name string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{AuthorID: 1, Name: name}
	require.NoError(t, recipeRepo.Create(context.Background(), recipe))
	return recipe
}

func TestMealPlanService_CreateAndGet(t *testing.T) {
	svc, _, _ := setupMealPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, 100, &models.MealPlanRequest{
		Name:      "Week of March 3rd",
		StartDate: "2025-03-03",
	})
	require.NoError(t, err)
	assert.NotZero(t, plan.ID)

	got, entries, err := svc.Get(ctx, 100, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Week of March 3rd", got.Name)
	assert.Empty(t, entries)
}

func TestMealPlanService_Create_BadDate(t *testing.T) {
	svc, _, _ := setupMealPlanService(t)

	_, err := svc.Create(context.Background(), 100, &models.MealPlanRequest{
		Name:      "Bad",
		StartDate: "03/03/2025",
	})
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}

func TestMealPlanService_Get_OtherUsersPlanHidden(t *testing.T) {
	svc, _, _ := setupMealPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "Mine", StartDate: "2025-03-03"})
	require.NoError(t, err)

	// Another user's plan reads as not found, not forbidden
	_, _, err = svc.Get(ctx, 200, plan.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestMealPlanService_AddEntry(t *testing.T) {
	svc, _, recipeRepo := setupMealPlanService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")
	plan, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "Plan", StartDate: "2025-03-03"})
	require.NoError(t, err)

	entry, err := svc.AddEntry(ctx, 100, plan.ID, &models.MealPlanEntryRequest{
		RecipeID: recipe.ID,
		PlanDate: "2025-03-04",
		Slot:     models.SlotDinner,
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "Green Curry", entry.RecipeName)
}

func TestMealPlanService_AddEntry_UnknownRecipe(t *testing.T) {
	svc, _, _ := setupMealPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "Plan", StartDate: "2025-03-03"})
	require.NoError(t, err)

	_, err = svc.AddEntry(ctx, 100, plan.ID, &models.MealPlanEntryRequest{
		RecipeID: 999,
		PlanDate: "2025-03-04",
		Slot:     models.SlotLunch,
	})
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestMealPlanService_Upcoming_CachedAndInvalidated(t *testing.T) {
	svc, _, recipeRepo := setupMealPlanService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Overnight Oats")
	plan, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "Plan", StartDate: "2025-03-03"})
	require.NoError(t, err)

	// Empty view gets cached
	view, err := svc.Upcoming(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)

	// Adding an entry inside the window invalidates the cached view
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	_, err = svc.AddEntry(ctx, 100, plan.ID, &models.MealPlanEntryRequest{
		RecipeID: recipe.ID,
		PlanDate: tomorrow,
		Slot:     models.SlotBreakfast,
	})
	require.NoError(t, err)

	view, err = svc.Upcoming(ctx, 100)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, recipe.ID, view.Entries[0].RecipeID)
}

func TestMealPlanService_DeleteEntry_WrongPlan(t *testing.T) {
	svc, _, recipeRepo := setupMealPlanService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")
	planA, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "A", StartDate: "2025-03-03"})
	require.NoError(t, err)
	planB, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "B", StartDate: "2025-03-10"})
	require.NoError(t, err)

	entry, err := svc.AddEntry(ctx, 100, planA.ID, &models.MealPlanEntryRequest{
		RecipeID: recipe.ID,
		PlanDate: "2025-03-04",
		Slot:     models.SlotDinner,
	})
	require.NoError(t, err)

	// Deleting through the wrong plan ID fails
	err = svc.DeleteEntry(ctx, 100, planB.ID, entry.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))

	// Deleting through the owning plan succeeds
	require.NoError(t, svc.DeleteEntry(ctx, 100, planA.ID, entry.ID))
}

func TestMealPlanService_Delete_OtherUser(t *testing.T) {
	svc, _, _ := setupMealPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, 100, &models.MealPlanRequest{Name: "Mine", StartDate: "2025-03-03"})
	require.NoError(t, err)

	err = svc.Delete(ctx, 200, plan.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}
