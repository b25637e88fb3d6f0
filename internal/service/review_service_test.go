package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

func setupReviewService(t *testing.T) (*ReviewService, *MockRecipeRepository) {
	t.Helper()

	recipeRepo := NewMockRecipeRepository()
	reviewRepo := NewMockReviewRepository()
	return NewReviewService(reviewRepo, recipeRepo), recipeRepo
}

func TestReviewService_Add(t *testing.T) {
	svc, recipeRepo := setupReviewService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")

	review, err := svc.Add(ctx, 2, recipe.ID, &models.ReviewRequest{Rating: 5, Comment: "Excellent"})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, int64(2), review.UserID)
}

func TestReviewService_Add_UnknownRecipe(t *testing.T) {
	svc, _ := setupReviewService(t)

	_, err := svc.Add(context.Background(), 2, 999, &models.ReviewRequest{Rating: 4})
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestReviewService_Add_OnePerUser(t *testing.T) {
	svc, recipeRepo := setupReviewService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")

	_, err := svc.Add(ctx, 2, recipe.ID, &models.ReviewRequest{Rating: 5})
	require.NoError(t, err)

	// A second review by the same user is rejected
	_, err = svc.Add(ctx, 2, recipe.ID, &models.ReviewRequest{Rating: 3})
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateError(err))

	// A different user may still review
	_, err = svc.Add(ctx, 3, recipe.ID, &models.ReviewRequest{Rating: 4})
	assert.NoError(t, err)
}

func TestReviewService_List(t *testing.T) {
	svc, recipeRepo := setupReviewService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")

	_, err := svc.Add(ctx, 2, recipe.ID, &models.ReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = svc.Add(ctx, 3, recipe.ID, &models.ReviewRequest{Rating: 4})
	require.NoError(t, err)

	reviews, total, err := svc.List(ctx, recipe.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, 2, total)
}

func TestReviewService_List_UnknownRecipe(t *testing.T) {
	svc, _ := setupReviewService(t)

	_, _, err := svc.List(context.Background(), 999, 10, 0)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestReviewService_Delete_NotAuthor(t *testing.T) {
	svc, recipeRepo := setupReviewService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")
	review, err := svc.Add(ctx, 2, recipe.ID, &models.ReviewRequest{Rating: 5})
	require.NoError(t, err)

	err = svc.Delete(ctx, 3, review.ID)
	require.Error(t, err)
	assert.True(t, utils.IsForbiddenError(err))
}

func TestReviewService_Delete_ByAuthor(t *testing.T) {
	svc, recipeRepo := setupReviewService(t)
	ctx := context.Background()

	recipe := seedRecipe(t, recipeRepo, "Green Curry")
	review, err := svc.Add(ctx, 2, recipe.ID, &models.ReviewRequest{Rating: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 2, review.ID))

	_, total, err := svc.List(ctx, recipe.ID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}
