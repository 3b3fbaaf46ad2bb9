package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/pkg/database"
)

type stateStore struct {
	*database.SQL
}

var _ service.StateStore = (*stateStore)(nil)

// NewState returns new instance of database backed state store.
func NewState(db *database.SQL) *stateStore {
	return &stateStore{
		db,
	}
}

func (s *stateStore) Get(ctx context.Context, userID int64) (*model.State, error) {
	query, args, err := s.StatementBuilder().
		Select("state").
		From("conversation_states").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get state query: %w", err)
	}

	var state model.State
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &state, nil
}

func (s *stateStore) Set(ctx context.Context, userID int64, state model.State) error {
	err := state.Validate()
	if err != nil {
		return fmt.Errorf("validate state: %w", err)
	}

	query, args, err := s.StatementBuilder().
		Insert("conversation_states").
		Columns("user_id", "state", "updated_at").
		Values(userID, state, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set state query: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, query, args...)
	return err
}

func (s *stateStore) Delete(ctx context.Context, userID int64) error {
	query, args, err := s.StatementBuilder().
		Delete("conversation_states").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete state query: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, query, args...)
	return err
}
