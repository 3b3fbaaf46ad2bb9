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
	"github.com/google/uuid"
)

type categoryStore struct {
	*database.SQL
}

var _ service.CategoryStore = (*categoryStore)(nil)

// NewCategory returns a new instance of the category store.
func NewCategory(db *database.SQL) *categoryStore {
	return &categoryStore{
		db,
	}
}

func (c *categoryStore) CreateIfNotExists(ctx context.Context, category *model.Category) (bool, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	query, args, err := c.StatementBuilder().
		Insert("categories").
		Columns("id", "user_id", "title").
		Values(category.ID, category.UserID, category.Title).
		Suffix("ON CONFLICT (user_id, title) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create category query: %w", err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (c *categoryStore) Get(ctx context.Context, filter service.GetCategoryFilter) (*model.Category, error) {
	stmt := c.StatementBuilder().
		Select("id", "user_id", "title").
		From("categories")

	if filter.UserID != 0 {
		stmt = stmt.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Title != "" {
		stmt = stmt.Where(sq.Eq{"title": filter.Title})
	}

	query, args, err := stmt.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var category model.Category
	err = c.DB.GetContext(ctx, &category, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}
