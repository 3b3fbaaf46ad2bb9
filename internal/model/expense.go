package model

import (
	"time"

	"github.com/VladPetriv/expense_bot/pkg/money"
)

// User represents a telegram user known to the bot.
type User struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// Category represents an expense category owned by a user.
type Category struct {
	ID     string `db:"id"`
	UserID int64  `db:"user_id"`
	Title  string `db:"title"`

	CreatedAt time.Time `db:"created_at"`
}

// Expense represents an expense recorded against a category of the same user.
type Expense struct {
	ID            string      `db:"id"`
	UserID        int64       `db:"user_id"`
	CategoryTitle string      `db:"category_title"`
	Amount        money.Money `db:"amount"`
	Date          Date        `db:"date"`

	CreatedAt time.Time `db:"created_at"`
}

// CategoryTotal represents a sum of expenses of one category.
type CategoryTotal struct {
	Title string      `db:"title"`
	Total money.Money `db:"total"`
}
