package migrations

import (
	"context"
	"database/sql"
)

// createCuisinesTable creates the cuisines catalog table
func createCuisinesTable() Migration {
	return Migration{
		Name:        "create_cuisines_table",
		Description: "Creates the cuisines catalog table",
		TableName:   "cuisines",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS cuisines (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					icon_url VARCHAR(512),
					CONSTRAINT idx_cuisine_name UNIQUE (name)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createDietsTable creates the diets catalog table
func createDietsTable() Migration {
	return Migration{
		Name:        "create_diets_table",
		Description: "Creates the diets catalog table",
		TableName:   "diets",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS diets (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					CONSTRAINT idx_diet_name UNIQUE (name)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createDishTypesTable creates the dish_types catalog table
func createDishTypesTable() Migration {
	return Migration{
		Name:        "create_dish_types_table",
		Description: "Creates the dish_types catalog table",
		TableName:   "dish_types",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS dish_types (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					CONSTRAINT idx_dish_type_name UNIQUE (name)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createNutrientsTable creates the nutrients catalog table
func createNutrientsTable() Migration {
	return Migration{
		Name:        "create_nutrients_table",
		Description: "Creates the nutrients catalog table",
		TableName:   "nutrients",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS nutrients (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					units TEXT[] NOT NULL DEFAULT '{}',
					CONSTRAINT idx_nutrient_name UNIQUE (name)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createCuisinePreferencesTable creates the cuisine_preferences table.
// User identity comes from the external identity service, so user_id
// carries no foreign key.
func createCuisinePreferencesTable() Migration {
	return Migration{
		Name:        "create_cuisine_preferences_table",
		Description: "Creates the cuisine_preferences table",
		TableName:   "cuisine_preferences",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS cuisine_preferences (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					item_id BIGINT NOT NULL,
					score INT NOT NULL CHECK (score > 0 AND score <= 5),
					CONSTRAINT fk_cuisine FOREIGN KEY (item_id) REFERENCES cuisines(id) ON DELETE CASCADE,
					CONSTRAINT idx_cuisine_prefs_user_item UNIQUE (user_id, item_id)
				);
				CREATE INDEX IF NOT EXISTS idx_cuisine_prefs_user ON cuisine_preferences(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createDietPreferencesTable creates the diet_preferences table
func createDietPreferencesTable() Migration {
	return Migration{
		Name:        "create_diet_preferences_table",
		Description: "Creates the diet_preferences table",
		TableName:   "diet_preferences",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS diet_preferences (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					item_id BIGINT NOT NULL,
					score INT NOT NULL CHECK (score > 0 AND score <= 3),
					CONSTRAINT fk_diet FOREIGN KEY (item_id) REFERENCES diets(id) ON DELETE CASCADE,
					CONSTRAINT idx_diet_prefs_user_item UNIQUE (user_id, item_id)
				);
				CREATE INDEX IF NOT EXISTS idx_diet_prefs_user ON diet_preferences(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createDishTypePreferencesTable creates the dish_type_preferences table
func createDishTypePreferencesTable() Migration {
	return Migration{
		Name:        "create_dish_type_preferences_table",
		Description: "Creates the dish_type_preferences table",
		TableName:   "dish_type_preferences",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS dish_type_preferences (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					item_id BIGINT NOT NULL,
					score INT NOT NULL CHECK (score > 0 AND score <= 3),
					CONSTRAINT fk_dish_type FOREIGN KEY (item_id) REFERENCES dish_types(id) ON DELETE CASCADE,
					CONSTRAINT idx_dish_type_prefs_user_item UNIQUE (user_id, item_id)
				);
				CREATE INDEX IF NOT EXISTS idx_dish_type_prefs_user ON dish_type_preferences(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createNutritionTargetsTable creates the nutrition_targets table.
// Targets use upsert semantics, so unlike the other preference tables a
// write never clears unmentioned rows.
func createNutritionTargetsTable() Migration {
	return Migration{
		Name:        "create_nutrition_targets_table",
		Description: "Creates the nutrition_targets table",
		TableName:   "nutrition_targets",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS nutrition_targets (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					item_id BIGINT NOT NULL,
					score INT NOT NULL CHECK (score > 0 AND score <= 10),
					CONSTRAINT fk_nutrient FOREIGN KEY (item_id) REFERENCES nutrients(id) ON DELETE CASCADE,
					CONSTRAINT idx_nutrition_targets_user_item UNIQUE (user_id, item_id)
				);
				CREATE INDEX IF NOT EXISTS idx_nutrition_targets_user ON nutrition_targets(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createRecipesTable creates the recipes table
func createRecipesTable() Migration {
	return Migration{
		Name:        "create_recipes_table",
		Description: "Creates the recipes table",
		TableName:   "recipes",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS recipes (
					id BIGSERIAL PRIMARY KEY,
					author_id BIGINT NOT NULL,
					name VARCHAR(255) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					cuisine VARCHAR(100) NOT NULL DEFAULT '',
					dish_type VARCHAR(100) NOT NULL DEFAULT '',
					diets TEXT[] NOT NULL DEFAULT '{}',
					ingredients TEXT[] NOT NULL DEFAULT '{}',
					instructions TEXT[] NOT NULL DEFAULT '{}',
					calories DECIMAL(8, 2) NOT NULL DEFAULT 0,
					protein DECIMAL(8, 2) NOT NULL DEFAULT 0,
					carbs DECIMAL(8, 2) NOT NULL DEFAULT 0,
					fat DECIMAL(8, 2) NOT NULL DEFAULT 0,
					image_url VARCHAR(512),
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				);
				CREATE INDEX IF NOT EXISTS idx_recipes_author ON recipes(author_id);
				CREATE INDEX IF NOT EXISTS idx_recipes_cuisine ON recipes(LOWER(cuisine));
				CREATE INDEX IF NOT EXISTS idx_recipes_dish_type ON recipes(LOWER(dish_type));
				CREATE INDEX IF NOT EXISTS idx_recipes_name ON recipes(LOWER(name));
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createRecipeReviewsTable creates the recipe_reviews table.
// The unique constraint enforces one review per user per recipe.
func createRecipeReviewsTable() Migration {
	return Migration{
		Name:        "create_recipe_reviews_table",
		Description: "Creates the recipe_reviews table",
		TableName:   "recipe_reviews",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS recipe_reviews (
					id BIGSERIAL PRIMARY KEY,
					recipe_id BIGINT NOT NULL,
					user_id BIGINT NOT NULL,
					rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
					comment TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_recipe FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE,
					CONSTRAINT idx_reviews_recipe_user UNIQUE (recipe_id, user_id)
				);
				CREATE INDEX IF NOT EXISTS idx_reviews_recipe ON recipe_reviews(recipe_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createMealPlansTable creates the meal_plans table
func createMealPlansTable() Migration {
	return Migration{
		Name:        "create_meal_plans_table",
		Description: "Creates the meal_plans table",
		TableName:   "meal_plans",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS meal_plans (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					name VARCHAR(255) NOT NULL,
					start_date DATE NOT NULL,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				);
				CREATE INDEX IF NOT EXISTS idx_meal_plans_user ON meal_plans(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createMealPlanEntriesTable creates the meal_plan_entries table.
// The unique constraint enforces one planned meal per plan, date, and slot.
func createMealPlanEntriesTable() Migration {
	return Migration{
		Name:        "create_meal_plan_entries_table",
		Description: "Creates the meal_plan_entries table",
		TableName:   "meal_plan_entries",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS meal_plan_entries (
					id BIGSERIAL PRIMARY KEY,
					plan_id BIGINT NOT NULL,
					recipe_id BIGINT NOT NULL,
					plan_date DATE NOT NULL,
					slot VARCHAR(20) NOT NULL,
					CONSTRAINT fk_plan FOREIGN KEY (plan_id) REFERENCES meal_plans(id) ON DELETE CASCADE,
					CONSTRAINT fk_entry_recipe FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE,
					CONSTRAINT idx_entries_plan_date_slot UNIQUE (plan_id, plan_date, slot)
				);
				CREATE INDEX IF NOT EXISTS idx_entries_plan ON meal_plan_entries(plan_id);
				CREATE INDEX IF NOT EXISTS idx_entries_date ON meal_plan_entries(plan_date);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}
