package migrations

import (
	"fmt"

	"github.com/VladPetriv/expense_bot/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/lopezator/migrator"
)

// MigrateDB applies pending migrations to the database.
func MigrateDB(log *logger.Logger, db *sqlx.DB, dbName string, migrations []any) error {
	logger := log.With().Str("name", "MigrateDB").Logger()
	logger.Debug().Str("dbName", dbName).Msg("migrating database ...")

	m, err := migrator.New(migrator.Migrations(migrations...))
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	pending, err := m.Pending(db.DB)
	if err != nil {
		// Pending fails on a fresh database without migrations table.
		logger.Debug().Err(err).Msg("got pending error, treating database as empty")
		pending = make([]any, len(migrations))
	}

	databaseVersion := len(migrations) - len(pending)
	logger.Info().Int("dbVersion", databaseVersion).Msg("current database version")

	if len(pending) == 0 {
		logger.Info().Msg("no new migrations were found")
		return nil
	}

	logger.Info().Int("pending", len(pending)).Msg("new migrations were found, running migrations ...")

	err = m.Migrate(db.DB)
	if err != nil {
		logger.Error().Err(err).Msg("run migrations")
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info().Int("updatedDatabaseVersion", len(migrations)).Msg("migrations were successfully completed")
	return nil
}
