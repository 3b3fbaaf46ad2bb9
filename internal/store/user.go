package store

import (
	"context"
	"fmt"

	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/pkg/database"
)

type userStore struct {
	*database.SQL
}

var _ service.UserStore = (*userStore)(nil)

// NewUser returns new instance of user store.
func NewUser(db *database.SQL) *userStore {
	return &userStore{
		db,
	}
}

func (u *userStore) CreateIfNotExists(ctx context.Context, userID int64) error {
	query, args, err := u.StatementBuilder().
		Insert("users").
		Columns("id").
		Values(userID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user query: %w", err)
	}

	_, err = u.DB.ExecContext(ctx, query, args...)
	return err
}
