package migrations

import (
	"github.com/VladPetriv/listings_api/pkg/database"
	"github.com/lopezator/migrator"
)

// For returns migrations for the given SQL dialect, in the order they must be applied.
func For(dialect database.Dialect) []any {
	return []any{
		&migrator.Migration{
			Name: "Init categories table",
			Func: initCategoryTable(dialect),
		},
		&migrator.Migration{
			Name: "Init items table",
			Func: initItemTable(dialect),
		},
	}
}
