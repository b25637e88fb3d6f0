package migrations_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/plateful/Plateful_Backend/internal/database"
	"github.com/plateful/Plateful_Backend/migrations"
)

// createMockDB creates a mock database for testing
func createMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

// expectTableExists sets up the table existence check to report the given result
func expectTableExists(mock sqlmock.Sqlmock, exists bool) {
	rows := sqlmock.NewRows([]string{"exists"}).AddRow(exists)
	mock.ExpectQuery("SELECT EXISTS.*information_schema.tables").
		WillReturnRows(rows)
}

// TestNewMigrator tests the NewMigrator function
func TestNewMigrator(t *testing.T) {
	db, _, cleanup := createMockDB(t)
	defer cleanup()

	pool := &database.Pool{DB: db}
	migrator := migrations.NewMigrator(pool)

	assert.NotNil(t, migrator)
}

// TestGetMigrations tests the GetMigrations function
func TestGetMigrations(t *testing.T) {
	migrations := migrations.GetMigrations()

	// We should have all the domain tables defined
	assert.NotEmpty(t, migrations)

	// Check a few key migrations
	foundCuisines := false
	foundRecipes := false
	foundReviews := false
	foundPlans := false

	for _, migration := range migrations {
		switch migration.Name {
		case "create_cuisines_table":
			foundCuisines = true
			assert.Equal(t, "cuisines", migration.TableName)
		case "create_recipes_table":
			foundRecipes = true
			assert.Equal(t, "recipes", migration.TableName)
		case "create_recipe_reviews_table":
			foundReviews = true
			assert.Equal(t, "recipe_reviews", migration.TableName)
		case "create_meal_plans_table":
			foundPlans = true
			assert.Equal(t, "meal_plans", migration.TableName)
		}
	}

	assert.True(t, foundCuisines, "Should include cuisines table migration")
	assert.True(t, foundRecipes, "Should include recipes table migration")
	assert.True(t, foundReviews, "Should include recipe reviews table migration")
	assert.True(t, foundPlans, "Should include meal plans table migration")
}

// TestRunMigrations tests the main RunMigrations function
func TestRunMigrations(t *testing.T) {
	migrationCount := len(migrations.GetMigrations())

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "Error - Create migrations table fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnError(errors.New("failed to create migrations table"))
			},
			wantErr: true,
		},
		{
			name: "Error - Table exists check fails",
			setup: func(mock sqlmock.Sqlmock) {
				// Create migrations table
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))

				// First table verification fails
				mock.ExpectQuery("SELECT EXISTS.*information_schema.tables").
					WillReturnError(errors.New("failed to check table existence"))
			},
			wantErr: true,
		},
		{
			name: "Error - Get executed migrations fails",
			setup: func(mock sqlmock.Sqlmock) {
				// Create migrations table
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))

				// All tables verified present
				for i := 0; i < migrationCount; i++ {
					expectTableExists(mock, true)
				}

				// Get executed migrations fails
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnError(errors.New("failed to get executed migrations"))
			},
			wantErr: true,
		},
		{
			name: "Success - Tables already exist",
			setup: func(mock sqlmock.Sqlmock) {
				// Create migrations table
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))

				// Verification pass sees every table present
				for i := 0; i < migrationCount; i++ {
					expectTableExists(mock, true)
				}

				// Get executed migrations (empty)
				rows := sqlmock.NewRows([]string{"name"})
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(rows)

				// For each migration, table already exists so it is just recorded
				for i := 0; i < migrationCount; i++ {
					expectTableExists(mock, true)

					mock.ExpectExec("INSERT INTO migrations").
						WillReturnResult(sqlmock.NewResult(1, 1))
				}

				// Image column check finds the column present
				columnRows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery("SELECT EXISTS.*information_schema.columns").
					WillReturnRows(columnRows)
			},
			wantErr: false,
		},
		{
			name: "Success - All migrations already recorded",
			setup: func(mock sqlmock.Sqlmock) {
				// Create migrations table
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))

				// Verification pass sees every table present
				for i := 0; i < migrationCount; i++ {
					expectTableExists(mock, true)
				}

				// Every migration is already recorded
				rows := sqlmock.NewRows([]string{"name"})
				for _, migration := range migrations.GetMigrations() {
					rows.AddRow(migration.Name)
				}
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(rows)

				// Image column check finds the column present
				columnRows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery("SELECT EXISTS.*information_schema.columns").
					WillReturnRows(columnRows)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := createMockDB(t)
			defer cleanup()

			tt.setup(mock)

			pool := &database.Pool{DB: db}
			migrator := migrations.NewMigrator(pool)

			ctx := context.Background()
			err := migrator.RunMigrations(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestRunSQL tests individual migration's RunSQL functions
func TestRunSQL(t *testing.T) {
	migrationsList := migrations.GetMigrations()

	if len(migrationsList) == 0 {
		t.Skip("No migrations to test")
	}

	// Test the first migration's RunSQL function
	firstMigration := migrationsList[0]

	t.Run("RunSQL - "+firstMigration.Name, func(t *testing.T) {
		db, mock, cleanup := createMockDB(t)
		defer cleanup()

		ctx := context.Background()

		// Begin transaction for the test
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		// Expect the SQL from the migration
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Run the migration's SQL
		err = firstMigration.RunSQL(ctx, tx)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestMigrationProperties tests that all migrations have the required properties
func TestMigrationProperties(t *testing.T) {
	migrations := migrations.GetMigrations()

	for _, migration := range migrations {
		t.Run(migration.Name, func(t *testing.T) {
			assert.NotEmpty(t, migration.Name, "Migration should have a name")
			assert.NotEmpty(t, migration.Description, "Migration should have a description")
			assert.NotEmpty(t, migration.TableName, "Migration should have a table name")
			assert.NotNil(t, migration.RunSQL, "Migration should have a RunSQL function")
		})
	}
}

// TestTransactionBehavior tests transaction behavior in various scenarios
func TestTransactionBehavior(t *testing.T) {
	t.Run("Transaction rollback on failure", func(t *testing.T) {
		db, mock, cleanup := createMockDB(t)
		defer cleanup()

		// Set up expectations
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS test_table").
			WillReturnError(errors.New("migration failed"))
		mock.ExpectRollback()

		pool := &database.Pool{DB: db}

		// Migration that fails
		failingMigration := migrations.Migration{
			Name:        "failing_migration",
			Description: "Migration that fails",
			RunSQL: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS test_table")
				return err
			},
		}

		ctx := context.Background()

		// Use the Pool's Transaction method to test transaction behavior
		err := pool.Transaction(ctx, func(tx *sql.Tx) error {
			// Run the migration
			if err := failingMigration.RunSQL(ctx, tx); err != nil {
				return err
			}

			// Record the migration - this line won't be reached due to the error above
			_, err := tx.ExecContext(ctx, "INSERT INTO migrations (name, description) VALUES ($1, $2)", failingMigration.Name, failingMigration.Description)
			return err
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
