package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
)

// SearchService resolves user-facing search submissions into store-level
// requests and runs them. For each category an explicit filter constrains the
// match set; the use-my-preferences flag instead biases ranking using the
// user's merged view. If a submission carries both for one category, the
// explicit filter wins and the flag is ignored.
type SearchService struct {
	recipeRepo  repository.RecipeRepository
	preferences *PreferenceService
	pageSize    int
}

// NewSearchService creates a new SearchService
func NewSearchService(recipeRepo repository.RecipeRepository, preferences *PreferenceService, pageSize int) *SearchService {
	return &SearchService{
		recipeRepo:  recipeRepo,
		preferences: preferences,
		pageSize:    pageSize,
	}
}

// Search runs a recipe search for a user. A userID of zero means the caller
// is anonymous: preference flags are ignored and only explicit filters apply.
func (s *SearchService) Search(ctx context.Context, userID int64, query *models.RecipeSearchQuery) (*models.RecipeSearchResult, error) {
	req, err := s.resolve(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	return s.recipeRepo.Search(ctx, req)
}

// resolve translates the submission into a store request. Preference lookups
// for the flagged categories run concurrently; each is skipped when the
// category already has an explicit filter.
func (s *SearchService) resolve(ctx context.Context, userID int64, query *models.RecipeSearchQuery) (*models.RecipeSearchRequest, error) {
	page := query.Page
	if page < 0 {
		page = 0
	}

	req := &models.RecipeSearchRequest{
		Query:    query.Query,
		Cuisine:  query.Cuisine,
		Diet:     query.Diet,
		DishType: query.DishType,
		Limit:    s.pageSize,
		Offset:   page * s.pageSize,
	}

	if userID == 0 {
		return req, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	if query.UseCuisinePreferences && query.Cuisine == "" {
		g.Go(func() error {
			names, err := s.preferences.PreferredNames(gctx, models.CategoryCuisine, userID)
			if err != nil {
				return err
			}
			req.PreferredCuisines = names
			return nil
		})
	}
	if query.UseDietPreferences && query.Diet == "" {
		g.Go(func() error {
			names, err := s.preferences.PreferredNames(gctx, models.CategoryDiet, userID)
			if err != nil {
				return err
			}
			req.PreferredDiets = names
			return nil
		})
	}
	if query.UseDishTypePreferences && query.DishType == "" {
		g.Go(func() error {
			names, err := s.preferences.PreferredNames(gctx, models.CategoryDishType, userID)
			if err != nil {
				return err
			}
			req.PreferredDishTypes = names
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return req, nil
}
