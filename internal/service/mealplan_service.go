package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/cache"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// upcomingPlanDays is the window length of the cached upcoming plan view.
const upcomingPlanDays = 7

// MealPlanService manages calendar meal plans, their entries, and the cached
// upcoming plan view. Plans are private: all reads and writes check
// ownership.
type MealPlanService struct {
	planRepo    repository.MealPlanRepository
	recipeRepo  repository.RecipeRepository
	cache       cache.Cache
	upcomingTTL time.Duration
}

// NewMealPlanService creates a new MealPlanService
func NewMealPlanService(
	planRepo repository.MealPlanRepository,
	recipeRepo repository.RecipeRepository,
	c cache.Cache,
	upcomingTTL time.Duration,
) *MealPlanService {
	return &MealPlanService{
		planRepo:    planRepo,
		recipeRepo:  recipeRepo,
		cache:       c,
		upcomingTTL: upcomingTTL,
	}
}

// Create stores a new meal plan for a user
func (s *MealPlanService) Create(ctx context.Context, userID int64, req *models.MealPlanRequest) (*models.MealPlan, error) {
	startDate, err := parsePlanDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		UserID:    userID,
		Name:      req.Name,
		StartDate: startDate,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Get retrieves a plan and its entries after checking ownership
func (s *MealPlanService) Get(ctx context.Context, userID, planID int64) (*models.MealPlan, []*models.MealPlanEntry, error) {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.planRepo.ListEntries(ctx, planID)
	if err != nil {
		return nil, nil, err
	}

	return plan, entries, nil
}

// List retrieves all of a user's plans
func (s *MealPlanService) List(ctx context.Context, userID int64) ([]*models.MealPlan, error) {
	return s.planRepo.ListByUser(ctx, userID)
}

// Delete removes a plan and its entries after checking ownership
func (s *MealPlanService) Delete(ctx context.Context, userID, planID int64) error {
	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return err
	}

	s.invalidateUpcoming(ctx, userID)
	return nil
}

// AddEntry schedules a recipe into a plan after checking ownership and that
// the recipe exists
func (s *MealPlanService) AddEntry(ctx context.Context, userID, planID int64, req *models.MealPlanEntryRequest) (*models.MealPlanEntry, error) {
	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepo.GetByID(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}

	planDate, err := parsePlanDate(req.PlanDate)
	if err != nil {
		return nil, err
	}

	entry := &models.MealPlanEntry{
		PlanID:   planID,
		RecipeID: req.RecipeID,
		PlanDate: planDate,
		Slot:     req.Slot,
	}

	if err := s.planRepo.AddEntry(ctx, entry); err != nil {
		return nil, err
	}
	entry.RecipeName = recipe.Name

	s.invalidateUpcoming(ctx, userID)
	return entry, nil
}

// DeleteEntry removes an entry after checking that the caller owns its plan
func (s *MealPlanService) DeleteEntry(ctx context.Context, userID, planID, entryID int64) error {
	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}

	entry, err := s.planRepo.GetEntry(ctx, entryID)
	if err != nil {
		return err
	}

	if entry.PlanID != planID {
		return utils.NewNotFoundError("MealPlanEntry", entryID)
	}

	if err := s.planRepo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}

	s.invalidateUpcoming(ctx, userID)
	return nil
}

// Upcoming returns the user's planned meals for the next seven days across
// all of their plans. The view is cached; plan writes invalidate it.
func (s *MealPlanService) Upcoming(ctx context.Context, userID int64) (*models.UpcomingPlanView, error) {
	key := cache.UpcomingPlanKey(userID)
	return cache.GetOrCompute(ctx, s.cache, key, s.upcomingTTL,
		func(view *models.UpcomingPlanView) bool {
			// A stale or foreign payload decodes into a zero-valued view
			return view != nil && view.UserID == userID && !view.From.IsZero()
		},
		func(ctx context.Context) (*models.UpcomingPlanView, error) {
			from := time.Now().UTC().Truncate(24 * time.Hour)
			until := from.AddDate(0, 0, upcomingPlanDays)

			entries, err := s.planRepo.UpcomingEntries(ctx, userID, from, until)
			if err != nil {
				return nil, err
			}

			return &models.UpcomingPlanView{
				UserID:  userID,
				From:    from,
				Until:   until,
				Entries: entries,
			}, nil
		})
}

// ownedPlan fetches a plan and verifies the caller owns it. Plans of other
// users surface as not found rather than forbidden to avoid leaking their
// existence.
func (s *MealPlanService) ownedPlan(ctx context.Context, userID, planID int64) (*models.MealPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if plan.UserID != userID {
		return nil, utils.NewNotFoundError("MealPlan", planID)
	}

	return plan, nil
}

// invalidateUpcoming drops the cached upcoming view after a plan write.
func (s *MealPlanService) invalidateUpcoming(ctx context.Context, userID int64) {
	key := cache.UpcomingPlanKey(userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		utils.LogCacheEvent("invalidate_failed", key, err)
		log.Warn().Int64("user_id", userID).Msg("Failed to invalidate upcoming plan cache")
	}
}

// parsePlanDate parses a YYYY-MM-DD date string
func parsePlanDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, utils.NewValidationError("date", "Must be a date in YYYY-MM-DD format")
	}
	return date, nil
}
