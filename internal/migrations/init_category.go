package migrations

import "database/sql"

func initCategoryTable(db *sql.DB) error {
	return execAll(db, `
		CREATE TABLE categories (
			id VARCHAR(36) PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

			CONSTRAINT categories_user_id_title_key UNIQUE (user_id, title)
		);
	`)
}
