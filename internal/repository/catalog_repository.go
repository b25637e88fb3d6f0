package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// CatalogRepository defines methods for reading the catalog reference data.
// Catalogs are seeded operationally and treated as read-only by the API.
type CatalogRepository interface {
	ListAll(ctx context.Context, category models.Category) ([]*models.CatalogItem, error)
	Search(ctx context.Context, category models.Category, query string, limit, offset int) ([]*models.CatalogItem, int, error)
	GetByID(ctx context.Context, category models.Category, id int64) (*models.CatalogItem, error)
	ExistingIDs(ctx context.Context, category models.Category, ids []int64) (map[int64]struct{}, error)
}

// PostgresCatalogRepository is a PostgreSQL implementation of CatalogRepository
type PostgresCatalogRepository struct {
	db *database.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *database.Pool) CatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

// selectColumns returns the column list for a category. Missing optional
// columns are selected as typed NULLs so every category scans the same way.
func selectColumns(spec categorySpec) string {
	iconCol := "NULL::text AS icon_url"
	if spec.hasIconURL {
		iconCol = "icon_url"
	}
	unitsCol := "NULL::text[] AS units"
	if spec.hasUnits {
		unitsCol = "units"
	}
	return fmt.Sprintf("id, name, description, %s, %s", iconCol, unitsCol)
}

// scanCatalogItem scans one catalog row, folding NULL optionals to zero values.
func scanCatalogItem(scan func(dest ...interface{}) error) (*models.CatalogItem, error) {
	item := &models.CatalogItem{}
	var iconURL sql.NullString
	var units pq.StringArray

	if err := scan(&item.ID, &item.Name, &item.Description, &iconURL, &units); err != nil {
		return nil, err
	}

	if iconURL.Valid {
		item.IconURL = iconURL.String
	}
	if len(units) > 0 {
		item.Units = []string(units)
	}
	return item, nil
}

// ListAll retrieves every item of a catalog category in catalog order.
// Catalog order is alphabetical by name, which is also the order of the
// merged preference views built on top of this list.
func (r *PostgresCatalogRepository) ListAll(ctx context.Context, category models.Category) ([]*models.CatalogItem, error) {
	spec, err := specFor(category)
	if err != nil {
		return nil, err
	}

	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        ORDER BY name
    `, selectColumns(spec), spec.catalogTable)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query)

	// Log the query execution
	utils.LogDBQuery(
		query,
		nil,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list %s catalog: %w", category, err)
	}
	defer rows.Close()

	items := make([]*models.CatalogItem, 0)
	for rows.Next() {
		item, err := scanCatalogItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s catalog item: %w", category, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s catalog: %w", category, err)
	}

	return items, nil
}

// Search retrieves catalog items whose name matches the query text with a
// case-insensitive substring match, in catalog order, with the total match
// count for pagination. The settings dialogs use this to narrow the catalogs.
func (r *PostgresCatalogRepository) Search(ctx context.Context, category models.Category, query string, limit, offset int) ([]*models.CatalogItem, int, error) {
	spec, err := specFor(category)
	if err != nil {
		return nil, 0, err
	}

	pattern := "%" + query + "%"

	// Start query timer
	startTime := time.Now()

	// Get the total count first
	countQuery := fmt.Sprintf(`
        SELECT COUNT(*)
        FROM %s
        WHERE name ILIKE $1
    `, spec.catalogTable)

	var total int
	err = r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&total)

	// Log the query execution
	utils.LogDBQuery(
		countQuery,
		[]interface{}{pattern},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s catalog matches: %w", category, err)
	}

	// Define the page query
	startTime = time.Now()
	searchQuery := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE name ILIKE $1
        ORDER BY name
        LIMIT $2 OFFSET $3
    `, selectColumns(spec), spec.catalogTable)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, searchQuery, pattern, limit, offset)

	// Log the query execution
	utils.LogDBQuery(
		searchQuery,
		[]interface{}{pattern, limit, offset},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to search %s catalog: %w", category, err)
	}
	defer rows.Close()

	items := make([]*models.CatalogItem, 0)
	for rows.Next() {
		item, err := scanCatalogItem(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s catalog item: %w", category, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating %s catalog matches: %w", category, err)
	}

	return items, total, nil
}

// GetByID retrieves a single catalog item by its ID
func (r *PostgresCatalogRepository) GetByID(ctx context.Context, category models.Category, id int64) (*models.CatalogItem, error) {
	spec, err := specFor(category)
	if err != nil {
		return nil, err
	}

	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE id = $1
    `, selectColumns(spec), spec.catalogTable)

	// Execute the query
	item, err := scanCatalogItem(r.db.QueryRowContext(ctx, query, id).Scan)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("CatalogItem", id)
		}
		return nil, fmt.Errorf("failed to get %s catalog item: %w", category, err)
	}

	return item, nil
}

// ExistingIDs returns the subset of the given IDs that exist in the catalog.
// Preference writes use this to silently drop references to removed items.
func (r *PostgresCatalogRepository) ExistingIDs(ctx context.Context, category models.Category, ids []int64) (map[int64]struct{}, error) {
	if len(ids) == 0 {
		return map[int64]struct{}{}, nil
	}

	spec, err := specFor(category)
	if err != nil {
		return nil, err
	}

	// Start query timer
	startTime := time.Now()

	// Define the query
	query := fmt.Sprintf(`
        SELECT id
        FROM %s
        WHERE id = ANY($1)
    `, spec.catalogTable)

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{ids},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s catalog IDs: %w", category, err)
	}
	defer rows.Close()

	existing := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan catalog ID: %w", err)
		}
		existing[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog IDs: %w", err)
	}

	return existing, nil
}
