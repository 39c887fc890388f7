package migrations_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/VladPetriv/listings_api/internal/migrations"
	"github.com/VladPetriv/listings_api/pkg/database"
	"github.com/VladPetriv/listings_api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateDB_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "migrate.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	require.NoError(t, migrations.MigrateDB(logger.Nop(), db, "migrate"))

	var tables []string
	err = db.DB.SelectContext(ctx, &tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('categories', 'items', 'migrations') ORDER BY name;",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"categories", "items", "migrations"}, tables)

	var applied int
	require.NoError(t, db.DB.GetContext(ctx, &applied, "SELECT COUNT(*) FROM migrations;"))
	assert.Equal(t, len(migrations.For(database.DialectSQLite)), applied)

	// a second run finds nothing pending
	require.NoError(t, migrations.MigrateDB(logger.Nop(), db, "migrate"))
	require.NoError(t, db.DB.GetContext(ctx, &applied, "SELECT COUNT(*) FROM migrations;"))
	assert.Equal(t, len(migrations.For(database.DialectSQLite)), applied)
}

func TestMigrateDB_SQLite_CategoryNameIsUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "unique.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	require.NoError(t, migrations.MigrateDB(logger.Nop(), db, "unique"))

	_, err = db.DB.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?);", "Sports")
	require.NoError(t, err)

	_, err = db.DB.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?);", "Sports")
	assert.Error(t, err)

	// exact match only, so a different case is another category
	_, err = db.DB.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?);", "sports")
	assert.NoError(t, err)
}

func TestMigrateDB_SQLite_ItemsReferenceCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "fk.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	require.NoError(t, migrations.MigrateDB(logger.Nop(), db, "fk"))

	_, err = db.DB.ExecContext(ctx, "INSERT INTO items (name, category_id) VALUES (?, ?);", "Bike", 999)
	assert.Error(t, err)
}
