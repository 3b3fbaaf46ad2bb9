package migrations

import "database/sql"

func initExpenseTable(db *sql.DB) error {
	return execAll(db,
		`
		CREATE TABLE expenses (
			id VARCHAR(36) PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category_id VARCHAR(36) NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			amount NUMERIC(12, 2) NOT NULL,
			date DATE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`CREATE INDEX idx_expenses_user_id_date ON expenses (user_id, date);`,
	)
}
