//go:build !integration

package store_test

import (
	"testing"

	"github.com/VladPetriv/expense_bot/internal/migrations"
	"github.com/VladPetriv/expense_bot/pkg/database"
	"github.com/VladPetriv/expense_bot/pkg/logger"
	"github.com/stretchr/testify/require"
)

// createTestDB returns a private migrated in-memory SQLite database.
func createTestDB(t *testing.T, testCaseName string) *database.SQL {
	t.Helper()

	testDB, err := database.NewSQLite(":memory:")
	require.NoError(t, err)

	err = migrations.MigrateDB(logger.Nop(), testDB.DB, testCaseName, migrations.Migrations)
	require.NoError(t, err)

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}
