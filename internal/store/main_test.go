package store_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/VladPetriv/listings_api/internal/migrations"
	"github.com/VladPetriv/listings_api/pkg/database"
	"github.com/VladPetriv/listings_api/pkg/logger"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

const (
	postgresUser     = "listings"
	postgresPassword = "listings"
	postgresDatabase = "listings"
)

var (
	postgresDB   *database.SQL
	postgresPort string
	log          = logger.Nop()
	dbCounter    atomic.Int64
)

// TestMain starts a PostgreSQL container when Docker is reachable. Without Docker
// only the SQLite variants of the store tests run.
func TestMain(m *testing.M) {
	var (
		pool     *dockertest.Pool
		resource *dockertest.Resource
	)

	if os.Getenv("LISTINGS_SKIP_POSTGRES") == "" {
		pool, resource = startPostgres()
	}

	code := m.Run()

	if postgresDB != nil {
		_ = postgresDB.Close()
	}
	if pool != nil && resource != nil {
		_ = pool.Purge(resource)
	}

	os.Exit(code)
}

func startPostgres() (*dockertest.Pool, *dockertest.Resource) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Printf("could not construct docker pool, postgres tests are skipped: %s\n", err)
		return nil, nil
	}

	err = pool.Client.Ping()
	if err != nil {
		fmt.Printf("could not connect to docker, postgres tests are skipped: %s\n", err)
		return nil, nil
	}

	resource, err := pool.Run(
		"postgres",
		"16-alpine",
		[]string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDatabase,
		})
	if err != nil {
		fmt.Printf("could not start postgres, postgres tests are skipped: %s\n", err)
		return nil, nil
	}

	postgresPort = resource.GetPort("5432/tcp")
	err = pool.Retry(func() error {
		db, err := database.NewPostgreSQL(postgresOptions(postgresDatabase))
		if err != nil {
			return err
		}

		err = db.DB.Ping()
		if err != nil {
			_ = db.Close()
			return err
		}

		postgresDB = db
		return nil
	})
	if err != nil {
		fmt.Printf("could not connect to postgres, postgres tests are skipped: %s\n", err)
		_ = pool.Purge(resource)
		return nil, nil
	}

	return pool, resource
}

func postgresOptions(dbName string) database.PostgreSQLOptions {
	return database.PostgreSQLOptions{
		User:     postgresUser,
		Password: postgresPassword,
		Database: dbName,
		Host:     "localhost",
		Port:     postgresPort,
		SSLMode:  "disable",
	}
}

// forEachDialect runs fn against a freshly migrated database of every available dialect.
func forEachDialect(t *testing.T, fn func(t *testing.T, db *database.SQL)) {
	t.Helper()

	dialects := []database.Dialect{database.DialectSQLite, database.DialectPostgres}
	for _, dialect := range dialects {
		dialect := dialect
		t.Run(string(dialect), func(t *testing.T) {
			t.Parallel()

			fn(t, createTestDB(t, dialect))
		})
	}
}

func createTestDB(t *testing.T, dialect database.Dialect) *database.SQL {
	t.Helper()

	if dialect == database.DialectSQLite {
		testDB, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.sqlite3"))
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = testDB.Close()
		})

		err = migrations.MigrateDB(log, testDB, "sqlite")
		require.NoError(t, err)

		return testDB
	}

	if postgresDB == nil {
		t.Skip("postgres is not available")
	}

	dbName := testDBName(t.Name())

	_, err := postgresDB.DB.Exec(fmt.Sprintf("CREATE DATABASE %s;", dbName))
	require.NoError(t, err)

	testDB, err := database.NewPostgreSQL(postgresOptions(dbName))
	require.NoError(t, err)

	err = migrations.MigrateDB(log, testDB, dbName)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = testDB.Close()

		_, err := postgresDB.DB.Exec(fmt.Sprintf("DROP DATABASE %s;", dbName))
		require.NoError(t, err)
	})

	return testDB
}

func testDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, testName)
	if len(name) > 40 {
		name = name[len(name)-40:]
	}

	return fmt.Sprintf("t%d_%s", dbCounter.Add(1), name)
}
