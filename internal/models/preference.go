// Package models provides data structures and operations for the Plateful application.
// This file contains the user preference models: per-user scores against
// catalog items and the derived merged view that covers the entire catalog.
package models

// PreferenceRow records a user's chosen strength for a single catalog item.
// The (UserID, ItemID) pair is unique per category table. A score of zero is
// equivalent to absence and is never persisted for the replace-all
// categories (cuisines, diets, dish types).
type PreferenceRow struct {
	// UserID references the user who owns this preference.
	UserID int64 `json:"user_id" db:"user_id"`

	// ItemID references the catalog item being scored.
	ItemID int64 `json:"item_id" db:"item_id"`

	// Score is the preference strength. Bounds are category-specific.
	Score int `json:"score" db:"score"`

	// ItemName is the joined catalog item name, populated on reads.
	ItemName string `json:"item_name,omitempty" db:"item_name"`
}

// MergedPreference is one entry of the derived, cached merged view: a catalog
// item together with the user's score for it, defaulting to zero when the
// user has no row. The merged view always covers the entire catalog for the
// category, in catalog order.
type MergedPreference struct {
	ItemID      int64  `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	Score       int    `json:"score"`
}

// PreferenceUpdate is one submitted preference in a replace-all or upsert
// request. Scores of zero are accepted on input and dropped on write for the
// replace-all categories.
type PreferenceUpdate struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
	Score  int   `json:"score" validate:"gte=0"`
}

// ReplacePreferencesRequest is the body of a replace-all preference submit.
type ReplacePreferencesRequest struct {
	Preferences []PreferenceUpdate `json:"preferences" validate:"required,dive"`
}

// UpsertTargetsRequest is the body of a nutrition target submit. Unlike the
// replace-all categories, targets are upserted per item: omitting an item
// leaves its existing target untouched.
type UpsertTargetsRequest struct {
	Targets []PreferenceUpdate `json:"targets" validate:"required,min=1,dive"`
}
