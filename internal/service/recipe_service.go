package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// RecipeService manages recipe lifecycle and ownership rules. Only the
// author of a recipe may update or delete it.
type RecipeService struct {
	recipeRepo repository.RecipeRepository
	reviewRepo repository.ReviewRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo repository.RecipeRepository, reviewRepo repository.ReviewRepository) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		reviewRepo: reviewRepo,
	}
}

// RecipeDetail bundles a recipe with its aggregate rating for detail views.
type RecipeDetail struct {
	Recipe        *models.Recipe `json:"recipe"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
}

// Create stores a new recipe owned by authorID
func (s *RecipeService) Create(ctx context.Context, authorID int64, req *models.RecipeRequest) (*models.Recipe, error) {
	recipe := models.NewRecipe(authorID, req)

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Get retrieves a recipe with its aggregate rating
func (s *RecipeService) Get(ctx context.Context, id int64) (*RecipeDetail, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rating, err := s.reviewRepo.Rating(ctx, id)
	if err != nil {
		return nil, err
	}

	return &RecipeDetail{
		Recipe:        recipe,
		AverageRating: rating.AverageRating,
		ReviewCount:   rating.ReviewCount,
	}, nil
}

// Update applies a partial update to a recipe after checking ownership
func (s *RecipeService) Update(ctx context.Context, userID, recipeID int64, update *models.RecipeUpdate) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != userID {
		return nil, utils.NewForbiddenError("Only the recipe author can modify it")
	}

	recipe.Apply(update)

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Delete removes a recipe after checking ownership. Reviews and plan entries
// referencing it are removed by the database cascade; cached upcoming plan
// views that still list it age out within their TTL.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}

	if recipe.AuthorID != userID {
		return utils.NewForbiddenError("Only the recipe author can delete it")
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return err
	}

	log.Info().
		Int64("recipe_id", recipeID).
		Int64("user_id", userID).
		Msg("Recipe removed by author")

	return nil
}
