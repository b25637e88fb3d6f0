package service

import (
	"context"

	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// ReviewService manages recipe reviews. Each user may review a recipe once
// and may only remove their own reviews.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	recipeRepo repository.RecipeRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository, recipeRepo repository.RecipeRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		recipeRepo: recipeRepo,
	}
}

// Add creates a review for a recipe. The recipe must exist; a second review
// by the same user surfaces as a duplicate error.
func (s *ReviewService) Add(ctx context.Context, userID, recipeID int64, req *models.ReviewRequest) (*models.Review, error) {
	// Verify the recipe exists before writing
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return nil, err
	}

	review := &models.Review{
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// List retrieves one page of a recipe's reviews with the total count
func (s *ReviewService) List(ctx context.Context, recipeID int64, limit, offset int) ([]*models.Review, int, error) {
	// Verify the recipe exists so a bad ID yields 404 rather than an empty page
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return nil, 0, err
	}

	return s.reviewRepo.ListByRecipe(ctx, recipeID, limit, offset)
}

// Delete removes a review after checking ownership
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != userID {
		return utils.NewForbiddenError("Only the review author can delete it")
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}
