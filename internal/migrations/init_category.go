package migrations

import (
	"database/sql"

	"github.com/VladPetriv/listings_api/pkg/database"
)

func initCategoryTable(dialect database.Dialect) func(tx *sql.Tx) error {
	query := `
		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			CONSTRAINT categories_name_key UNIQUE (name)
		);
	`
	if dialect == database.DialectPostgres {
		query = `
		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			CONSTRAINT categories_name_key UNIQUE (name)
		);
	`
	}

	return func(tx *sql.Tx) error {
		_, err := tx.Exec(query)
		return err
	}
}
