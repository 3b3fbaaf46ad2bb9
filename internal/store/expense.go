package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/pkg/database"
	"github.com/google/uuid"
)

type expenseStore struct {
	*database.SQL
	categories *categoryStore
}

var _ service.ExpenseStore = (*expenseStore)(nil)

// NewExpense returns a new instance of the expense store.
func NewExpense(db *database.SQL) *expenseStore {
	return &expenseStore{
		SQL:        db,
		categories: NewCategory(db),
	}
}

func (e *expenseStore) Create(ctx context.Context, expense *model.Expense) (bool, error) {
	category, err := e.categories.Get(ctx, service.GetCategoryFilter{
		UserID: expense.UserID,
		Title:  expense.CategoryTitle,
	})
	if err != nil {
		return false, fmt.Errorf("get expense category: %w", err)
	}
	if category == nil {
		return false, nil
	}

	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	query, args, err := e.StatementBuilder().
		Insert("expenses").
		Columns("id", "user_id", "category_id", "amount", "date").
		Values(expense.ID, expense.UserID, category.ID, expense.Amount, expense.Date).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create expense query: %w", err)
	}

	_, err = e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (e *expenseStore) SumByCategory(ctx context.Context, filter service.SumExpensesFilter) ([]model.CategoryTotal, error) {
	stmt := e.StatementBuilder().
		Select("c.title AS title", "SUM(e.amount) AS total").
		From("expenses e").
		Join("categories c ON c.id = e.category_id").
		Where(sq.Eq{"e.user_id": filter.UserID}).
		GroupBy("c.title").
		OrderBy("total DESC", "c.title")

	if !filter.From.IsZero() {
		stmt = stmt.Where(sq.GtOrEq{"e.date": filter.From})
	}
	if !filter.To.IsZero() {
		stmt = stmt.Where(sq.LtOrEq{"e.date": filter.To})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sum expenses query: %w", err)
	}

	var totals []model.CategoryTotal
	err = e.DB.SelectContext(ctx, &totals, query, args...)
	if err != nil {
		return nil, err
	}

	return totals, nil
}
