// Package models provides data structures and operations for the Plateful application.
// This file contains the meal plan models: calendar-based plans owned by a
// user, each holding dated entries that reference recipes.
package models

import "time"

// Meal slots identify which meal of the day an entry fills.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnack     = "snack"
)

// ValidSlot reports whether s is a recognized meal slot.
func ValidSlot(s string) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// MealPlan represents a named calendar meal plan owned by a user.
type MealPlan struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MealPlanEntry is one planned meal: a recipe scheduled on a date and slot
// within a plan.
type MealPlanEntry struct {
	ID       int64     `json:"id" db:"id"`
	PlanID   int64     `json:"plan_id" db:"plan_id"`
	RecipeID int64     `json:"recipe_id" db:"recipe_id"`
	PlanDate time.Time `json:"plan_date" db:"plan_date"`
	Slot     string    `json:"slot" db:"slot"`

	// RecipeName is the joined recipe name, populated on reads.
	RecipeName string `json:"recipe_name,omitempty" db:"recipe_name"`
}

// MealPlanRequest is the body for creating a meal plan.
type MealPlanRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

// MealPlanEntryRequest is the body for adding an entry to a plan.
type MealPlanEntryRequest struct {
	RecipeID int64  `json:"recipe_id" validate:"required,gt=0"`
	PlanDate string `json:"plan_date" validate:"required,datetime=2006-01-02"`
	Slot     string `json:"slot" validate:"required,oneof=breakfast lunch dinner snack"`
}

// UpcomingPlanView is the derived, cached view of a user's planned meals for
// the next seven days, across all of their plans.
type UpcomingPlanView struct {
	UserID  int64            `json:"user_id"`
	From    time.Time        `json:"from"`
	Until   time.Time        `json:"until"`
	Entries []*MealPlanEntry `json:"entries"`
}
