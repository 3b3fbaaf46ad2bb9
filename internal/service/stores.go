package service

import (
	"context"

	"github.com/VladPetriv/expense_bot/internal/model"
)

// Stores represents all stores.
type Stores struct {
	User     UserStore
	Category CategoryStore
	Expense  ExpenseStore
	State    StateStore
}

// UserStore provides functionality for work with users store.
//
//go:generate mockery --dir . --name UserStore --output ./mocks
type UserStore interface {
	// CreateIfNotExists creates a user, an existing user is left untouched.
	CreateIfNotExists(ctx context.Context, userID int64) error
}

// CategoryStore provides functionality for work with categories store.
//
//go:generate mockery --dir . --name CategoryStore --output ./mocks
type CategoryStore interface {
	// CreateIfNotExists creates a category and reports whether it was inserted.
	// Categories are unique per user and title.
	CreateIfNotExists(ctx context.Context, category *model.Category) (bool, error)
	// Get returns a category by filter, nil is returned when nothing matches.
	Get(ctx context.Context, filter GetCategoryFilter) (*model.Category, error)
}

// GetCategoryFilter represents a filters for CategoryStore.Get method.
type GetCategoryFilter struct {
	UserID int64
	Title  string
}

// ExpenseStore provides functionality for work with expenses store.
//
//go:generate mockery --dir . --name ExpenseStore --output ./mocks
type ExpenseStore interface {
	// Create creates an expense against the category of the same user with model.Expense.CategoryTitle.
	// False is returned when such category does not exist.
	Create(ctx context.Context, expense *model.Expense) (bool, error)
	// SumByCategory returns totals per category ordered by total descending.
	SumByCategory(ctx context.Context, filter SumExpensesFilter) ([]model.CategoryTotal, error)
}

// SumExpensesFilter represents a filters for ExpenseStore.SumByCategory method, both dates are inclusive.
type SumExpensesFilter struct {
	UserID int64
	From   model.Date
	To     model.Date
}

// StateStore represents a store for conversation states, at most one state is kept per user.
//
//go:generate mockery --dir . --name StateStore --output ./mocks
type StateStore interface {
	// Get returns the user state, nil means the user is idle.
	Get(ctx context.Context, userID int64) (*model.State, error)
	// Set replaces the user state.
	Set(ctx context.Context, userID int64, state model.State) error
	// Delete removes the user state, deleting an absent state is not an error.
	Delete(ctx context.Context, userID int64) error
}
