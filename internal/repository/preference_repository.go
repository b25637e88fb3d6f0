package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// PreferenceRepository defines methods for reading and writing per-user
// preference scores. The replace-all categories (cuisines, diets, dish types)
// overwrite the user's full row set in one transaction; nutrition targets are
// upserted item by item.
type PreferenceRepository interface {
	GetByUserID(ctx context.Context, category models.Category, userID int64) ([]*models.PreferenceRow, error)
	ReplaceAll(ctx context.Context, category models.Category, userID int64, prefs []models.PreferenceUpdate) error
	UpsertScores(ctx context.Context, category models.Category, userID int64, targets []models.PreferenceUpdate) error
	DeleteByUserID(ctx context.Context, category models.Category, userID int64) error
}

// PostgresPreferenceRepository is a PostgreSQL implementation of PreferenceRepository
type PostgresPreferenceRepository struct {
	db *database.Pool
}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository(db *database.Pool) PreferenceRepository {
	return &PostgresPreferenceRepository{
		db: db,
	}
}

// GetByUserID retrieves all of a user's preference rows in one category,
// joined with the catalog item names, in catalog order.
func (r *PostgresPreferenceRepository) GetByUserID(ctx context.Context, category models.Category, userID int64) ([]*models.PreferenceRow, error) {
	spec, err := specFor(category)
	if err != nil {
		return nil, err
	}

	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT p.user_id, p.item_id, p.score, c.name
        FROM %s p
        JOIN %s c ON c.id = p.item_id
        WHERE p.user_id = $1
        ORDER BY c.name
    `, spec.prefTable, spec.catalogTable)

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
		return nil, fmt.Errorf("failed to get %s preferences: %w", category, err)
	}
	defer rows.Close()

	prefs := make([]*models.PreferenceRow, 0)
	for rows.Next() {
		row := &models.PreferenceRow{}
		if err := rows.Scan(&row.UserID, &row.ItemID, &row.Score, &row.ItemName); err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}
		prefs = append(prefs, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preference rows: %w", err)
	}

	return prefs, nil
}

// ReplaceAll atomically replaces a user's entire row set in one category.
// Entries with a zero score are not persisted; absence and zero are the same
// state. Callers are expected to have validated item IDs and score bounds.
func (r *PostgresPreferenceRepository) ReplaceAll(ctx context.Context, category models.Category, userID int64, prefs []models.PreferenceUpdate) error {
	spec, err := specFor(category)
	if err != nil {
		return err
	}

	// Start query timer
	startTime := time.Now()

	err = r.db.Transaction(ctx, func(tx *sql.Tx) error {
		// Delete the user's existing rows
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, spec.prefTable)
		if _, err := tx.ExecContext(ctx, deleteQuery, userID); err != nil {
			return fmt.Errorf("failed to clear %s preferences: %w", category, err)
		}

		// Insert the submitted rows, skipping zero scores
		insertQuery := fmt.Sprintf(`
            INSERT INTO %s (user_id, item_id, score)
            VALUES ($1, $2, $3)
        `, spec.prefTable)

		for _, pref := range prefs {
			if pref.Score <= 0 {
				continue
			}
			if _, err := tx.ExecContext(ctx, insertQuery, userID, pref.ItemID, pref.Score); err != nil {
				return fmt.Errorf("failed to insert %s preference for item %d: %w", category, pref.ItemID, err)
			}
		}

		return nil
	})

	// Log the transaction execution
	utils.LogDBQuery(
		fmt.Sprintf("REPLACE %s preferences", spec.prefTable),
		[]interface{}{userID, len(prefs)},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return err
	}

	log.Info().
		Int64("user_id", userID).
		Str("category", string(category)).
		Int("submitted", len(prefs)).
		Msg("Preferences replaced")

	return nil
}

// UpsertScores writes the given targets without touching unmentioned items.
// A zero score removes the item's row, matching the convention that zero and
// absence are the same state.
func (r *PostgresPreferenceRepository) UpsertScores(ctx context.Context, category models.Category, userID int64, targets []models.PreferenceUpdate) error {
	spec, err := specFor(category)
	if err != nil {
		return err
	}

	// Start query timer
	startTime := time.Now()

	err = r.db.Transaction(ctx, func(tx *sql.Tx) error {
		upsertQuery := fmt.Sprintf(`
            INSERT INTO %s (user_id, item_id, score)
            VALUES ($1, $2, $3)
            ON CONFLICT (user_id, item_id) DO UPDATE SET score = EXCLUDED.score
        `, spec.prefTable)

		deleteQuery := fmt.Sprintf(`
            DELETE FROM %s WHERE user_id = $1 AND item_id = $2
        `, spec.prefTable)

		for _, target := range targets {
			if target.Score <= 0 {
				if _, err := tx.ExecContext(ctx, deleteQuery, userID, target.ItemID); err != nil {
					return fmt.Errorf("failed to clear %s target for item %d: %w", category, target.ItemID, err)
				}
				continue
			}
			if _, err := tx.ExecContext(ctx, upsertQuery, userID, target.ItemID, target.Score); err != nil {
				return fmt.Errorf("failed to upsert %s target for item %d: %w", category, target.ItemID, err)
			}
		}

		return nil
	})

	// Log the transaction execution
	utils.LogDBQuery(
		fmt.Sprintf("UPSERT %s targets", spec.prefTable),
		[]interface{}{userID, len(targets)},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return err
	}

	log.Info().
		Int64("user_id", userID).
		Str("category", string(category)).
		Int("submitted", len(targets)).
		Msg("Targets upserted")

	return nil
}

// DeleteByUserID removes all of a user's rows in one category.
func (r *PostgresPreferenceRepository) DeleteByUserID(ctx context.Context, category models.Category, userID int64) error {
	spec, err := specFor(category)
	if err != nil {
		return err
	}

	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, spec.prefTable)

	// Execute the query
	_, err = r.db.ExecContext(ctx, query, userID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete %s preferences: %w", category, err)
	}

	return nil
}
