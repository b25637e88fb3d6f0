// Package models provides data structures and operations for the Plateful application.
// This file contains the built-in catalog data that is seeded into the database
// during initial setup. The catalogs are curated and extended through seeding,
// never through the public API.
package models

// DefaultCuisines returns the built-in cuisine catalog.
// These will be seeded in the database during initial setup.
//
// Returns:
//   - A slice of CatalogItem instances with predefined names and icons
func DefaultCuisines() []CatalogItem {
	return []CatalogItem{
		{
			Name:        "Italian",
			Description: "Pasta, risotto, and Mediterranean staples",
			IconURL:     "/icons/cuisines/italian.svg",
		},
		{
			Name:        "Mexican",
			Description: "Tacos, salsas, and bold chili-driven dishes",
			IconURL:     "/icons/cuisines/mexican.svg",
		},
		{
			Name:        "Chinese",
			Description: "Stir fries, dumplings, and regional Chinese cooking",
			IconURL:     "/icons/cuisines/chinese.svg",
		},
		{
			Name:        "Indian",
			Description: "Curries, dals, and spice-forward dishes",
			IconURL:     "/icons/cuisines/indian.svg",
		},
		{
			Name:        "Japanese",
			Description: "Sushi, ramen, and seasonal Japanese cooking",
			IconURL:     "/icons/cuisines/japanese.svg",
		},
		{
			Name:        "Thai",
			Description: "Fragrant curries and sweet-sour-salty balance",
			IconURL:     "/icons/cuisines/thai.svg",
		},
		{
			Name:        "French",
			Description: "Classic technique-driven European cooking",
			IconURL:     "/icons/cuisines/french.svg",
		},
		{
			Name:        "Greek",
			Description: "Olive oil, feta, and Aegean classics",
			IconURL:     "/icons/cuisines/greek.svg",
		},
		{
			Name:        "Spanish",
			Description: "Tapas, paella, and Iberian flavors",
			IconURL:     "/icons/cuisines/spanish.svg",
		},
		{
			Name:        "Middle Eastern",
			Description: "Mezze, grilled meats, and warm spices",
			IconURL:     "/icons/cuisines/middle-eastern.svg",
		},
		{
			Name:        "American",
			Description: "Comfort food and regional American classics",
			IconURL:     "/icons/cuisines/american.svg",
		},
		{
			Name:        "Korean",
			Description: "Fermented sides, barbecue, and rice bowls",
			IconURL:     "/icons/cuisines/korean.svg",
		},
	}
}

// DefaultDiets returns the built-in diet catalog.
// Diet names double as the adjectives recipes carry in their diets list,
// so seeding keeps the two vocabularies aligned.
//
// Returns:
//   - A slice of CatalogItem instances with predefined diet names
func DefaultDiets() []CatalogItem {
	return []CatalogItem{
		{
			Name:        "Vegan",
			Description: "No animal products of any kind",
		},
		{
			Name:        "Vegetarian",
			Description: "No meat or fish, dairy and eggs allowed",
		},
		{
			Name:        "Gluten Free",
			Description: "No wheat, barley, or rye",
		},
		{
			Name:        "Dairy Free",
			Description: "No milk, cheese, or other dairy",
		},
		{
			Name:        "Keto",
			Description: "Very low carbohydrate, high fat",
		},
		{
			Name:        "Paleo",
			Description: "No grains, legumes, or processed sugar",
		},
		{
			Name:        "Pescetarian",
			Description: "Vegetarian plus fish and seafood",
		},
	}
}

// DefaultDishTypes returns the built-in dish type catalog.
// These will be seeded in the database during initial setup.
//
// Returns:
//   - A slice of CatalogItem instances with predefined dish type names
func DefaultDishTypes() []CatalogItem {
	return []CatalogItem{
		{
			Name:        "Main course",
			Description: "The central dish of a meal",
		},
		{
			Name:        "Side dish",
			Description: "Accompaniments served alongside a main",
		},
		{
			Name:        "Appetizer",
			Description: "Small dishes served before the main",
		},
		{
			Name:        "Salad",
			Description: "Cold or warm composed salads",
		},
		{
			Name:        "Soup",
			Description: "Broths, stews, and blended soups",
		},
		{
			Name:        "Dessert",
			Description: "Sweet dishes served after the meal",
		},
		{
			Name:        "Breakfast",
			Description: "Morning dishes and brunch fare",
		},
		{
			Name:        "Snack",
			Description: "Small bites between meals",
		},
		{
			Name:        "Beverage",
			Description: "Drinks, smoothies, and shakes",
		},
		{
			Name:        "Sauce",
			Description: "Sauces, dressings, and condiments",
		},
	}
}

// DefaultNutrients returns the built-in nutrient catalog.
// Each nutrient carries the units it can be expressed in. These will be
// seeded in the database during initial setup.
//
// Returns:
//   - A slice of CatalogItem instances with predefined nutrient names and units
func DefaultNutrients() []CatalogItem {
	return []CatalogItem{
		{
			Name:        "Calories",
			Description: "Total energy per serving",
			Units:       []string{"kcal"},
		},
		{
			Name:        "Protein",
			Description: "Protein content per serving",
			Units:       []string{"g"},
		},
		{
			Name:        "Carbohydrates",
			Description: "Total carbohydrates per serving",
			Units:       []string{"g"},
		},
		{
			Name:        "Fat",
			Description: "Total fat per serving",
			Units:       []string{"g"},
		},
		{
			Name:        "Fiber",
			Description: "Dietary fiber per serving",
			Units:       []string{"g"},
		},
		{
			Name:        "Sugar",
			Description: "Total sugars per serving",
			Units:       []string{"g"},
		},
		{
			Name:        "Sodium",
			Description: "Sodium content per serving",
			Units:       []string{"mg", "g"},
		},
		{
			Name:        "Cholesterol",
			Description: "Cholesterol content per serving",
			Units:       []string{"mg"},
		},
	}
}
