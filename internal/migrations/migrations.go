package migrations

import (
	"database/sql"

	"github.com/lopezator/migrator"
)

// Migrations contains schema migrations shared by postgres and sqlite, the order must never change.
var Migrations = []any{
	&migrator.MigrationNoTx{
		Name: "Init user table",
		Func: initUserTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init category table",
		Func: initCategoryTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init expense table",
		Func: initExpenseTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init conversation state table",
		Func: initConversationStateTable,
	},
}

// execAll executes statements one by one, some drivers reject multi statement queries.
func execAll(db *sql.DB, statements ...string) error {
	for _, statement := range statements {
		_, err := db.Exec(statement)
		if err != nil {
			return err
		}
	}

	return nil
}
