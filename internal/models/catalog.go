// Package models provides data structures and operations for the Plateful application.
// This file contains the catalog reference data: the full lists of cuisines,
// diets, dish types, and nutrients that users score preferences against.
// Catalog identity is stable and independent of any user; the catalog is
// append-only reference data seeded operationally.
package models

import (
	"fmt"
	"strings"
)

// Category identifies one of the catalog variants. The string value matches
// the URL path segment used by the catalog and preference endpoints.
type Category string

// Catalog categories supported by the application.
const (
	// CategoryCuisine is the catalog of cuisines (e.g. "French", "Thai").
	CategoryCuisine Category = "cuisines"

	// CategoryDiet is the catalog of diets (e.g. "Vegan", "Keto").
	CategoryDiet Category = "diets"

	// CategoryDishType is the catalog of dish types (e.g. "Soup", "Dessert").
	CategoryDishType Category = "dish-types"

	// CategoryNutrient is the catalog of nutrients (e.g. "Protein", "Sodium").
	CategoryNutrient Category = "nutrients"
)

// ParseCategory converts a URL path segment into a Category.
//
// Returns an error for unrecognized values so handlers can reject bad paths
// before any repository work happens.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case CategoryCuisine:
		return CategoryCuisine, nil
	case CategoryDiet:
		return CategoryDiet, nil
	case CategoryDishType:
		return CategoryDishType, nil
	case CategoryNutrient:
		return CategoryNutrient, nil
	default:
		return "", fmt.Errorf("unknown catalog category: %q", s)
	}
}

// PreferenceCategories lists the categories that carry user preference rows,
// in a stable order. All four categories participate; nutrients use upsert
// semantics while the others use replace-all.
func PreferenceCategories() []Category {
	return []Category{CategoryCuisine, CategoryDiet, CategoryDishType, CategoryNutrient}
}

// CatalogItem represents a single entry in one of the catalogs.
// Name doubles as the diet adjective ("Vegan") for the diet category.
// IconURL is populated for cuisines only; Units for nutrients only.
type CatalogItem struct {
	// ID is the unique identifier of the catalog item within its category.
	ID int64 `json:"id" db:"id"`

	// Name is the display name or adjective. Unique within a category.
	Name string `json:"name" db:"name"`

	// Description is free text shown in the settings dialogs.
	Description string `json:"description" db:"description"`

	// IconURL is an optional icon reference (cuisines only).
	IconURL string `json:"icon_url,omitempty" db:"icon_url"`

	// Units is the optional set of allowed units (nutrients only).
	Units []string `json:"units,omitempty" db:"units"`
}
