package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// MealPlanRepository defines methods for interacting with meal plans and
// their entries.
type MealPlanRepository interface {
	Create(ctx context.Context, plan *models.MealPlan) error
	GetByID(ctx context.Context, id int64) (*models.MealPlan, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.MealPlan, error)
	Delete(ctx context.Context, id int64) error
	AddEntry(ctx context.Context, entry *models.MealPlanEntry) error
	GetEntry(ctx context.Context, id int64) (*models.MealPlanEntry, error)
	ListEntries(ctx context.Context, planID int64) ([]*models.MealPlanEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
	UpcomingEntries(ctx context.Context, userID int64, from, until time.Time) ([]*models.MealPlanEntry, error)
}

// PostgresMealPlanRepository is a PostgreSQL implementation of MealPlanRepository
type PostgresMealPlanRepository struct {
	db *database.Pool
}

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(db *database.Pool) MealPlanRepository {
	return &PostgresMealPlanRepository{
		db: db,
	}
}

// Create adds a new meal plan to the database
func (r *PostgresMealPlanRepository) Create(ctx context.Context, plan *models.MealPlan) error {
	// Start query timer
	startTime := time.Now()

	// Set created/updated timestamps
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	// Define the query
	query := fmt.Sprintf(`
        INSERT INTO %s (user_id, name, start_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, constants.TableMealPlans)

	args := []interface{}{plan.UserID, plan.Name, plan.StartDate, plan.CreatedAt, plan.UpdatedAt}

	// Execute the query
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&plan.ID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		args,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return utils.ParseError(err)
	}

	log.Info().
		Int64("plan_id", plan.ID).
		Int64("user_id", plan.UserID).
		Str("name", plan.Name).
		Msg("Meal plan created")

	return nil
}

// GetByID retrieves a meal plan by its ID
func (r *PostgresMealPlanRepository) GetByID(ctx context.Context, id int64) (*models.MealPlan, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT id, user_id, name, start_date, created_at, updated_at
        FROM %s
        WHERE id = $1
    `, constants.TableMealPlans)

	// Execute the query
	plan := &models.MealPlan{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.StartDate,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("MealPlan", id)
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}

	return plan, nil
}

// ListByUser retrieves all of a user's meal plans, most recent start first
func (r *PostgresMealPlanRepository) ListByUser(ctx context.Context, userID int64) ([]*models.MealPlan, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT id, user_id, name, start_date, created_at, updated_at
        FROM %s
        WHERE user_id = $1
        ORDER BY start_date DESC, id DESC
    `, constants.TableMealPlans)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query, userID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*models.MealPlan, 0)
	for rows.Next() {
		plan := &models.MealPlan{}
		if err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&plan.Name,
			&plan.StartDate,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meal plans: %w", err)
	}

	return plans, nil
}

// Delete removes a meal plan and, via ON DELETE CASCADE, its entries
func (r *PostgresMealPlanRepository) Delete(ctx context.Context, id int64) error {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, constants.TableMealPlans)

	// Execute the query
	result, err := r.db.ExecContext(ctx, query, id)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("MealPlan", id)
	}

	log.Info().
		Int64("plan_id", id).
		Msg("Meal plan deleted")

	return nil
}

// AddEntry schedules a recipe into a plan. The (plan, date, slot) triple is
// unique; a second recipe in the same slot surfaces as a duplicate error.
func (r *PostgresMealPlanRepository) AddEntry(ctx context.Context, entry *models.MealPlanEntry) error {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        INSERT INTO %s (plan_id, recipe_id, plan_date, slot)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, constants.TableMealPlanEntries)

	args := []interface{}{entry.PlanID, entry.RecipeID, entry.PlanDate, entry.Slot}

	// Execute the query
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		args,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return utils.ParseError(err)
	}

	log.Info().
		Int64("entry_id", entry.ID).
		Int64("plan_id", entry.PlanID).
		Int64("recipe_id", entry.RecipeID).
		Str("slot", entry.Slot).
		Msg("Meal plan entry added")

	return nil
}

// GetEntry retrieves a single plan entry by its ID
func (r *PostgresMealPlanRepository) GetEntry(ctx context.Context, id int64) (*models.MealPlanEntry, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT e.id, e.plan_id, e.recipe_id, e.plan_date, e.slot, r.name
        FROM %s e
        JOIN %s r ON r.id = e.recipe_id
        WHERE e.id = $1
    `, constants.TableMealPlanEntries, constants.TableRecipes)

	// Execute the query
	entry := &models.MealPlanEntry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.PlanID,
		&entry.RecipeID,
		&entry.PlanDate,
		&entry.Slot,
		&entry.RecipeName,
	)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("MealPlanEntry", id)
		}
		return nil, fmt.Errorf("failed to get meal plan entry: %w", err)
	}

	return entry, nil
}

// ListEntries retrieves all entries of a plan in calendar order
func (r *PostgresMealPlanRepository) ListEntries(ctx context.Context, planID int64) ([]*models.MealPlanEntry, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT e.id, e.plan_id, e.recipe_id, e.plan_date, e.slot, r.name
        FROM %s e
        JOIN %s r ON r.id = e.recipe_id
        WHERE e.plan_id = $1
        ORDER BY e.plan_date, e.slot, e.id
    `, constants.TableMealPlanEntries, constants.TableRecipes)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query, planID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{planID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list meal plan entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntry removes a single entry from a plan
func (r *PostgresMealPlanRepository) DeleteEntry(ctx context.Context, id int64) error {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, constants.TableMealPlanEntries)

	// Execute the query
	result, err := r.db.ExecContext(ctx, query, id)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete meal plan entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("MealPlanEntry", id)
	}

	log.Info().
		Int64("entry_id", id).
		Msg("Meal plan entry deleted")

	return nil
}

// UpcomingEntries retrieves a user's planned meals across all plans in the
// half-open date range [from, until), in calendar order.
func (r *PostgresMealPlanRepository) UpcomingEntries(ctx context.Context, userID int64, from, until time.Time) ([]*models.MealPlanEntry, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT e.id, e.plan_id, e.recipe_id, e.plan_date, e.slot, r.name
        FROM %s e
        JOIN %s p ON p.id = e.plan_id
        JOIN %s r ON r.id = e.recipe_id
        WHERE p.user_id = $1 AND e.plan_date >= $2 AND e.plan_date < $3
        ORDER BY e.plan_date, e.slot, e.id
    `, constants.TableMealPlanEntries, constants.TableMealPlans, constants.TableRecipes)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query, userID, from, until)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{userID, from, until},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// scanEntries scans plan entry rows joined with the recipe name.
func scanEntries(rows *sql.Rows) ([]*models.MealPlanEntry, error) {
	entries := make([]*models.MealPlanEntry, 0)
	for rows.Next() {
		entry := &models.MealPlanEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.PlanID,
			&entry.RecipeID,
			&entry.PlanDate,
			&entry.Slot,
			&entry.RecipeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meal plan entries: %w", err)
	}

	return entries, nil
}
