// Package models provides data structures and operations for the Plateful application.
// This file contains the recipe model and its request/update shapes.
package models

import (
	"time"
)

// Recipe represents a recipe in the system. Cuisine and DishType hold
// catalog names (denormalized for search), Diets holds the set of diet
// adjectives the recipe satisfies.
type Recipe struct {
	// ID is the unique identifier of the recipe.
	ID int64 `json:"id" db:"id"`

	// AuthorID references the user who created the recipe. Only the author
	// may update or delete it.
	AuthorID int64 `json:"author_id" db:"author_id"`

	// Name is the recipe title.
	Name string `json:"name" db:"name"`

	// Description is the free-text summary shown in search results.
	Description string `json:"description" db:"description"`

	// Cuisine is the catalog cuisine name this recipe belongs to.
	Cuisine string `json:"cuisine" db:"cuisine"`

	// DishType is the catalog dish type name this recipe belongs to.
	DishType string `json:"dish_type" db:"dish_type"`

	// Diets lists the diet adjectives the recipe satisfies.
	Diets []string `json:"diets" db:"diets"`

	// Ingredients and Instructions are ordered free-text lists.
	Ingredients  []string `json:"ingredients" db:"ingredients"`
	Instructions []string `json:"instructions" db:"instructions"`

	// Per-serving nutrition facts.
	Calories float64 `json:"calories" db:"calories"`
	Protein  float64 `json:"protein" db:"protein"`
	Carbs    float64 `json:"carbs" db:"carbs"`
	Fat      float64 `json:"fat" db:"fat"`

	// ImageURL is an optional reference to an externally stored image.
	ImageURL string `json:"image_url,omitempty" db:"image_url"`

	// CreatedAt records when the recipe was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt records when the recipe was last modified.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RecipeRequest is the body for creating a recipe.
type RecipeRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Cuisine      string   `json:"cuisine" validate:"max=100"`
	DishType     string   `json:"dish_type" validate:"max=100"`
	Diets        []string `json:"diets" validate:"max=20,dive,max=100"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,max=500"`
	Instructions []string `json:"instructions" validate:"required,min=1,dive,max=2000"`
	Calories     float64  `json:"calories" validate:"gte=0"`
	Protein      float64  `json:"protein" validate:"gte=0"`
	Carbs        float64  `json:"carbs" validate:"gte=0"`
	Fat          float64  `json:"fat" validate:"gte=0"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
}

// NewRecipe builds a Recipe owned by authorID from a create request.
func NewRecipe(authorID int64, req *RecipeRequest) *Recipe {
	now := time.Now()
	return &Recipe{
		AuthorID:     authorID,
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		DishType:     req.DishType,
		Diets:        req.Diets,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
		ImageURL:     req.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecipeUpdate represents the data that can be updated on a recipe.
// Only fields present in the request are modified, allowing partial updates.
type RecipeUpdate struct {
	Name         *string   `json:"name" validate:"omitempty,max=200"`
	Description  *string   `json:"description" validate:"omitempty,max=2000"`
	Cuisine      *string   `json:"cuisine" validate:"omitempty,max=100"`
	DishType     *string   `json:"dish_type" validate:"omitempty,max=100"`
	Diets        *[]string `json:"diets" validate:"omitempty,max=20,dive,max=100"`
	Ingredients  *[]string `json:"ingredients" validate:"omitempty,min=1,dive,max=500"`
	Instructions *[]string `json:"instructions" validate:"omitempty,min=1,dive,max=2000"`
	Calories     *float64  `json:"calories" validate:"omitempty,gte=0"`
	Protein      *float64  `json:"protein" validate:"omitempty,gte=0"`
	Carbs        *float64  `json:"carbs" validate:"omitempty,gte=0"`
	Fat          *float64  `json:"fat" validate:"omitempty,gte=0"`
	ImageURL     *string   `json:"image_url" validate:"omitempty,url"`
}

// Apply updates the Recipe with values from the update request. The
// UpdatedAt timestamp is refreshed to record the modification time.
func (r *Recipe) Apply(update *RecipeUpdate) {
	if update.Name != nil {
		r.Name = *update.Name
	}
	if update.Description != nil {
		r.Description = *update.Description
	}
	if update.Cuisine != nil {
		r.Cuisine = *update.Cuisine
	}
	if update.DishType != nil {
		r.DishType = *update.DishType
	}
	if update.Diets != nil {
		r.Diets = *update.Diets
	}
	if update.Ingredients != nil {
		r.Ingredients = *update.Ingredients
	}
	if update.Instructions != nil {
		r.Instructions = *update.Instructions
	}
	if update.Calories != nil {
		r.Calories = *update.Calories
	}
	if update.Protein != nil {
		r.Protein = *update.Protein
	}
	if update.Carbs != nil {
		r.Carbs = *update.Carbs
	}
	if update.Fat != nil {
		r.Fat = *update.Fat
	}
	if update.ImageURL != nil {
		r.ImageURL = *update.ImageURL
	}
	r.UpdatedAt = time.Now()
}
