package migrations

import "database/sql"

func initUserTable(db *sql.DB) error {
	return execAll(db, `
		CREATE TABLE users (
			id BIGINT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
}
