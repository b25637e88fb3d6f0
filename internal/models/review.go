package models

import "time"

// Review represents a user's review of a recipe. A user may review a recipe
// at most once; the (recipe, user) pair is unique.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	RecipeID  int64     `json:"recipe_id" db:"recipe_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReviewRequest is the body for creating a review.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// RecipeRating summarizes review aggregates for a recipe.
type RecipeRating struct {
	RecipeID      int64   `json:"recipe_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
