package migrations

import "database/sql"

func initConversationStateTable(db *sql.DB) error {
	return execAll(db, `
		CREATE TABLE conversation_states (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			state TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
}
