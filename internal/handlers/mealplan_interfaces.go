package handlers

import (
	"context"

	"github.com/plateful/Plateful_Backend/internal/models"
)

// MealPlanServiceInterface defines methods required from the meal plan service.
// Plans are private to their owner; every method checks ownership.
type MealPlanServiceInterface interface {
	// Create stores a new meal plan for a user.
	Create(ctx context.Context, userID int64, req *models.MealPlanRequest) (*models.MealPlan, error)

	// Get retrieves a plan and its entries.
	Get(ctx context.Context, userID, planID int64) (*models.MealPlan, []*models.MealPlanEntry, error)

	// List retrieves all of a user's plans.
	List(ctx context.Context, userID int64) ([]*models.MealPlan, error)

	// Delete removes a plan and its entries.
	Delete(ctx context.Context, userID, planID int64) error

	// AddEntry schedules a recipe into a plan on a date and slot.
	AddEntry(ctx context.Context, userID, planID int64, req *models.MealPlanEntryRequest) (*models.MealPlanEntry, error)

	// DeleteEntry removes a planned meal from a plan.
	DeleteEntry(ctx context.Context, userID, planID, entryID int64) error

	// Upcoming returns the cached view of the user's planned meals for the
	// next seven days across all of their plans.
	Upcoming(ctx context.Context, userID int64) (*models.UpcomingPlanView, error)
}
