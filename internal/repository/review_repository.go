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

// ReviewRepository defines methods for interacting with recipe reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	ListByRecipe(ctx context.Context, recipeID int64, limit, offset int) ([]*models.Review, int, error)
	Delete(ctx context.Context, id int64) error
	Rating(ctx context.Context, recipeID int64) (*models.RecipeRating, error)
}

// PostgresReviewRepository is a PostgreSQL implementation of ReviewRepository
type PostgresReviewRepository struct {
	db *database.Pool
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *database.Pool) ReviewRepository {
	return &PostgresReviewRepository{
		db: db,
	}
}

// Create adds a new review to the database. Each user may review a recipe
// once; a second attempt surfaces as a duplicate error.
func (r *PostgresReviewRepository) Create(ctx context.Context, review *models.Review) error {
	// Start query timer
	startTime := time.Now()

	review.CreatedAt = time.Now()

	// Define the query
	query := fmt.Sprintf(`
        INSERT INTO %s (recipe_id, user_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, constants.TableRecipeReviews)

	args := []interface{}{review.RecipeID, review.UserID, review.Rating, review.Comment, review.CreatedAt}

	// Execute the query
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID)

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
		Int64("review_id", review.ID).
		Int64("recipe_id", review.RecipeID).
		Int64("user_id", review.UserID).
		Int("rating", review.Rating).
		Msg("Review created")

	return nil
}

// GetByID retrieves a review by its ID
func (r *PostgresReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT id, recipe_id, user_id, rating, comment, created_at
        FROM %s
        WHERE id = $1
    `, constants.TableRecipeReviews)

	// Execute the query
	review := &models.Review{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID,
		&review.RecipeID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
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
			return nil, utils.NewNotFoundError("Review", id)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// ListByRecipe retrieves one page of a recipe's reviews, newest first,
// together with the total review count.
func (r *PostgresReviewRepository) ListByRecipe(ctx context.Context, recipeID int64, limit, offset int) ([]*models.Review, int, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT id, recipe_id, user_id, rating, comment, created_at
        FROM %s
        WHERE recipe_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `, constants.TableRecipeReviews)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query, recipeID, limit, offset)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{recipeID, limit, offset},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*models.Review, 0, limit)
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(
			&review.ID,
			&review.RecipeID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating reviews: %w", err)
	}

	// Count the total reviews for pagination metadata
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE recipe_id = $1`, constants.TableRecipeReviews)

	var total int
	countStart := time.Now()
	err = r.db.QueryRowContext(ctx, countQuery, recipeID).Scan(&total)

	utils.LogDBQuery(
		countQuery,
		[]interface{}{recipeID},
		time.Since(countStart),
		err,
	)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return reviews, total, nil
}

// Delete removes a review from the database
func (r *PostgresReviewRepository) Delete(ctx context.Context, id int64) error {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, constants.TableRecipeReviews)

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
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Review", id)
	}

	log.Info().
		Int64("review_id", id).
		Msg("Review deleted")

	return nil
}

// Rating returns a recipe's average rating and review count. A recipe with no
// reviews yields a zero average and a zero count rather than an error.
func (r *PostgresReviewRepository) Rating(ctx context.Context, recipeID int64) (*models.RecipeRating, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT COALESCE(AVG(rating), 0), COUNT(*)
        FROM %s
        WHERE recipe_id = $1
    `, constants.TableRecipeReviews)

	// Execute the query
	rating := &models.RecipeRating{RecipeID: recipeID}
	err := r.db.QueryRowContext(ctx, query, recipeID).Scan(&rating.AverageRating, &rating.ReviewCount)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{recipeID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get recipe rating: %w", err)
	}

	return rating, nil
}
