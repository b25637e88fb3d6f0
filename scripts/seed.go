// Package scripts provides utility scripts for database and system management.
//
// This package implements database seeding functionality to populate the
// catalog tables the application depends on. The seeding system works
// similarly to migrations, tracking executed seeds to ensure they only run once,
// making the process idempotent and safe to run on both new and existing databases.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
)

// Seeder handles database seeding.
// It provides methods to run seeds that populate the catalog tables
// with the built-in cuisines, diets, dish types, and nutrients.
type Seeder struct {
	db *database.Pool
}

// NewSeeder creates a new seeder.
//
// Parameters:
//   - db: A database connection pool to use for seeding
//
// Returns:
//   - *Seeder: A configured seeder
func NewSeeder(db *database.Pool) *Seeder {
	return &Seeder{
		db: db,
	}
}

// SeedDatabase seeds the database with initial data.
// It creates the seeds tracking table if it doesn't exist, then runs
// all seed functions that haven't been executed yet.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	// Create seeds table if it doesn't exist
	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	// Get executed seeds
	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	// Run seeds that haven't been executed yet
	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"cuisines", s.seedCuisines},
		{"diets", s.seedDiets},
		{"dish_types", s.seedDishTypes},
		{"nutrients", s.seedNutrients},
	}

	for _, seed := range seeds {
		if !executedSeeds[seed.Name] {
			log.Info().Str("seed", seed.Name).Msg("Running seed")
			if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
				return err
			}
		} else {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds table if it doesn't exist.
// This table tracks which seed operations have been executed.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - error: Any error encountered during table creation, nil if successful
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns a map of executed seeds.
// The map keys are seed names and values are always true.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - map[string]bool: A map containing names of executed seeds
//   - error: Any error encountered while retrieving seeds, nil if successful
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction.
// If the seed operation fails, the transaction is rolled back.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - name: The name of the seed operation
//   - seedFunc: The function that performs the seeding
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		// Run the seed
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		// Record the seed
		query := `INSERT INTO seeds (name) VALUES ($1)`
		_, err := tx.ExecContext(ctx, query, name)
		if err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// existingNames returns the set of names already present in a catalog table.
// It first counts the rows so an empty catalog skips the name query entirely.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - tx: The SQL transaction to use for the operation
//   - tableName: The catalog table to inspect
//
// Returns:
//   - map[string]bool: Names already present in the table
//   - error: Any error encountered during the lookup, nil if successful
func existingNames(ctx context.Context, tx *sql.Tx, tableName string) (map[string]bool, error) {
	var count int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tableName)
	if err := tx.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", tableName, err)
	}

	existing := make(map[string]bool)
	if count > 0 {
		query := fmt.Sprintf(`SELECT name FROM %s`, tableName)
		rows, err := tx.QueryContext(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to query existing %s: %w", tableName, err)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return nil, err
			}
			existing[name] = true
		}

		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	return existing, nil
}

// seedCuisines seeds the cuisines table with the built-in cuisine catalog.
// It checks for existing cuisines to avoid duplicates, so operator-added
// entries survive re-seeding.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - tx: The SQL transaction to use for the operation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) seedCuisines(ctx context.Context, tx *sql.Tx) error {
	existing, err := existingNames(ctx, tx, "cuisines")
	if err != nil {
		return err
	}

	insertedCount := 0
	for _, cuisine := range models.DefaultCuisines() {
		if !existing[cuisine.Name] {
			query := `
                INSERT INTO cuisines (name, description, icon_url)
                VALUES ($1, $2, $3)
            `
			_, err := tx.ExecContext(ctx, query, cuisine.Name, cuisine.Description, cuisine.IconURL)
			if err != nil {
				return fmt.Errorf("failed to insert cuisine %s: %w", cuisine.Name, err)
			}
			insertedCount++
		}
	}

	log.Info().
		Int("existing_cuisines", len(existing)).
		Int("inserted_cuisines", insertedCount).
		Msg("Cuisine seeding completed")

	return nil
}

// seedDiets seeds the diets table with the built-in diet catalog.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - tx: The SQL transaction to use for the operation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) seedDiets(ctx context.Context, tx *sql.Tx) error {
	existing, err := existingNames(ctx, tx, "diets")
	if err != nil {
		return err
	}

	insertedCount := 0
	for _, diet := range models.DefaultDiets() {
		if !existing[diet.Name] {
			query := `
                INSERT INTO diets (name, description)
                VALUES ($1, $2)
            `
			_, err := tx.ExecContext(ctx, query, diet.Name, diet.Description)
			if err != nil {
				return fmt.Errorf("failed to insert diet %s: %w", diet.Name, err)
			}
			insertedCount++
		}
	}

	log.Info().
		Int("existing_diets", len(existing)).
		Int("inserted_diets", insertedCount).
		Msg("Diet seeding completed")

	return nil
}

// seedDishTypes seeds the dish_types table with the built-in dish type catalog.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - tx: The SQL transaction to use for the operation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) seedDishTypes(ctx context.Context, tx *sql.Tx) error {
	existing, err := existingNames(ctx, tx, "dish_types")
	if err != nil {
		return err
	}

	insertedCount := 0
	for _, dishType := range models.DefaultDishTypes() {
		if !existing[dishType.Name] {
			query := `
                INSERT INTO dish_types (name, description)
                VALUES ($1, $2)
            `
			_, err := tx.ExecContext(ctx, query, dishType.Name, dishType.Description)
			if err != nil {
				return fmt.Errorf("failed to insert dish type %s: %w", dishType.Name, err)
			}
			insertedCount++
		}
	}

	log.Info().
		Int("existing_dish_types", len(existing)).
		Int("inserted_dish_types", insertedCount).
		Msg("Dish type seeding completed")

	return nil
}

// seedNutrients seeds the nutrients table with the built-in nutrient catalog.
// Units are stored as a PostgreSQL array.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - tx: The SQL transaction to use for the operation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) seedNutrients(ctx context.Context, tx *sql.Tx) error {
	existing, err := existingNames(ctx, tx, "nutrients")
	if err != nil {
		return err
	}

	insertedCount := 0
	for _, nutrient := range models.DefaultNutrients() {
		if !existing[nutrient.Name] {
			query := `
                INSERT INTO nutrients (name, description, units)
                VALUES ($1, $2, $3)
            `
			_, err := tx.ExecContext(ctx, query, nutrient.Name, nutrient.Description, pq.Array(nutrient.Units))
			if err != nil {
				return fmt.Errorf("failed to insert nutrient %s: %w", nutrient.Name, err)
			}
			insertedCount++
		}
	}

	log.Info().
		Int("existing_nutrients", len(existing)).
		Int("inserted_nutrients", insertedCount).
		Msg("Nutrient seeding completed")

	return nil
}
