package migrations

import (
	"database/sql"

	"github.com/VladPetriv/listings_api/pkg/database"
)

func initItemTable(dialect database.Dialect) func(tx *sql.Tx) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category_id INTEGER NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (category_id) REFERENCES categories(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_category_id ON items (category_id);`,
	}
	if dialect == database.DialectPostgres {
		queries[0] = `CREATE TABLE IF NOT EXISTS items (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category_id BIGINT NOT NULL,
			image VARCHAR(255) NOT NULL DEFAULT '',
			CONSTRAINT items_category_id_fkey FOREIGN KEY (category_id) REFERENCES categories(id)
		);`
	}

	return func(tx *sql.Tx) error {
		for _, query := range queries {
			if _, err := tx.Exec(query); err != nil {
				return err
			}
		}

		return nil
	}
}
