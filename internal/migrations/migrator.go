package migrations

import (
	"fmt"

	"github.com/VladPetriv/listings_api/pkg/database"
	"github.com/VladPetriv/listings_api/pkg/logger"
	"github.com/lopezator/migrator"
)

// MigrateDB applies pending migrations of db's dialect to the database.
func MigrateDB(log *logger.Logger, db *database.SQL, dbName string) error {
	logger := log.With().Str("name", "MigrateDB").Logger()
	logger.Debug().Str("dbName", dbName).Str("dialect", string(db.Dialect)).Msg("migrating database ...")

	migrations := For(db.Dialect)

	m, err := migrator.New(migrator.Migrations(migrations...))
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	databaseVersion := len(migrations)

	pending, err := m.Pending(db.DB.DB)
	switch err != nil {
	case true:
		// The migrations table does not exist before the first run.
		logger.Debug().Err(err).Msg("got pending error")
		databaseVersion = 0
	case false:
		databaseVersion -= len(pending)
	}

	logger.Info().Int("dbVersion", databaseVersion).Msg("current database version")

	if len(pending) > 0 || databaseVersion == 0 {
		logger.Info().Msg("new migrations were found, running migrations ...")

		err := m.Migrate(db.DB.DB)
		if err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		logger.Info().Int("updatedDatabaseVersion", len(migrations)).Msg("migrations were successfully completed")
		return nil
	}

	logger.Info().Msg("no new migrations were found")
	return nil
}
