package handlers

import (
	"context"

	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/service"
)

// RecipeServiceInterface defines methods required from the recipe service.
type RecipeServiceInterface interface {
	// Create stores a new recipe owned by the author.
	Create(ctx context.Context, authorID int64, req *models.RecipeRequest) (*models.Recipe, error)

	// Get retrieves a recipe together with its aggregate rating.
	Get(ctx context.Context, id int64) (*service.RecipeDetail, error)

	// Update applies a partial update after checking ownership.
	Update(ctx context.Context, userID, recipeID int64, update *models.RecipeUpdate) (*models.Recipe, error)

	// Delete removes a recipe after checking ownership.
	Delete(ctx context.Context, userID, recipeID int64) error
}

// SearchServiceInterface defines methods required from the search service.
type SearchServiceInterface interface {
	// Search resolves a user-facing search submission and runs it. A userID
	// of zero means the caller is anonymous.
	Search(ctx context.Context, userID int64, query *models.RecipeSearchQuery) (*models.RecipeSearchResult, error)
}

// ReviewServiceInterface defines methods required from the review service.
type ReviewServiceInterface interface {
	// Add creates a review for a recipe. Each user may review a recipe once.
	Add(ctx context.Context, userID, recipeID int64, req *models.ReviewRequest) (*models.Review, error)

	// List retrieves one page of a recipe's reviews with the total count.
	List(ctx context.Context, recipeID int64, limit, offset int) ([]*models.Review, int, error)

	// Delete removes a review after checking ownership.
	Delete(ctx context.Context, userID, reviewID int64) error
}
