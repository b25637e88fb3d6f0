// Package repository implements data access against PostgreSQL for catalogs,
// preferences, recipes, reviews, and meal plans.
package repository

import (
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// categorySpec describes the table layout of one catalog category. The four
// catalogs share a shape except for the optional columns noted here, which
// keeps the catalog and preference repositories generic over the category.
type categorySpec struct {
	catalogTable string
	prefTable    string
	hasIconURL   bool
	hasUnits     bool
	maxScore     int
}

var categorySpecs = map[models.Category]categorySpec{
	models.CategoryCuisine: {
		catalogTable: constants.TableCuisines,
		prefTable:    constants.TableCuisinePreferences,
		hasIconURL:   true,
		maxScore:     constants.MaxCuisineScore,
	},
	models.CategoryDiet: {
		catalogTable: constants.TableDiets,
		prefTable:    constants.TableDietPreferences,
		maxScore:     constants.MaxDietScore,
	},
	models.CategoryDishType: {
		catalogTable: constants.TableDishTypes,
		prefTable:    constants.TableDishTypePreferences,
		maxScore:     constants.MaxDishTypeScore,
	},
	models.CategoryNutrient: {
		catalogTable: constants.TableNutrients,
		prefTable:    constants.TableNutritionTargets,
		hasUnits:     true,
		maxScore:     constants.MaxNutrientTarget,
	},
}

// specFor returns the table layout for a category, or a bad request error for
// a category the repositories do not know.
func specFor(category models.Category) (categorySpec, error) {
	spec, ok := categorySpecs[category]
	if !ok {
		return categorySpec{}, utils.NewBadRequestError(constants.MsgUnknownCategory)
	}
	return spec, nil
}

// MaxScore returns the upper score bound for a category. Zero is the lower
// bound for every category.
func MaxScore(category models.Category) int {
	if spec, ok := categorySpecs[category]; ok {
		return spec.maxScore
	}
	return 0
}
