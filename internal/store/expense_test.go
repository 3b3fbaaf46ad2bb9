package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/internal/store"
	"github.com/VladPetriv/expense_bot/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpense_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCaseDB := createTestDB(t, "expense_create")
	userStore := store.NewUser(testCaseDB)
	categoryStore := store.NewCategory(testCaseDB)
	expenseStore := store.NewExpense(testCaseDB)

	const userID1, userID2 = int64(4001), int64(4002)
	for _, userID := range [...]int64{userID1, userID2} {
		require.NoError(t, userStore.CreateIfNotExists(ctx, userID))
	}
	_, err := categoryStore.CreateIfNotExists(ctx, &model.Category{UserID: userID1, Title: "Food"})
	require.NoError(t, err)

	date := model.Date{Year: 2026, Month: time.October, Day: 16}

	testCases := [...]struct {
		desc     string
		args     *model.Expense
		expected bool
	}{
		{
			desc: "expense created",
			args: &model.Expense{
				UserID:        userID1,
				CategoryTitle: "Food",
				Amount:        money.NewFromFloat(12.34),
				Date:          date,
			},
			expected: true,
		},
		{
			desc: "expense not created because category does not exist",
			args: &model.Expense{
				UserID:        userID1,
				CategoryTitle: "Rent",
				Amount:        money.NewFromInt(1),
				Date:          date,
			},
			expected: false,
		},
		{
			desc: "expense not created because category belongs to other user",
			args: &model.Expense{
				UserID:        userID2,
				CategoryTitle: "Food",
				Amount:        money.NewFromInt(1),
				Date:          date,
			},
			expected: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := expenseStore.Create(ctx, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestExpense_SumByCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCaseDB := createTestDB(t, "expense_sum_by_category")
	userStore := store.NewUser(testCaseDB)
	categoryStore := store.NewCategory(testCaseDB)
	expenseStore := store.NewExpense(testCaseDB)

	const userID, otherUserID = int64(5001), int64(5002)
	for _, id := range [...]int64{userID, otherUserID} {
		require.NoError(t, userStore.CreateIfNotExists(ctx, id))
		for _, title := range [...]string{"Food", "Transport"} {
			_, err := categoryStore.CreateIfNotExists(ctx, &model.Category{UserID: id, Title: title})
			require.NoError(t, err)
		}
	}

	october := model.Period{Year: 2026, Month: time.October}
	expenses := [...]model.Expense{
		{UserID: userID, CategoryTitle: "Food", Amount: money.NewFromFloat(10.5), Date: model.Date{Year: 2026, Month: time.October, Day: 1}},
		{UserID: userID, CategoryTitle: "Food", Amount: money.NewFromFloat(4.25), Date: model.Date{Year: 2026, Month: time.October, Day: 31}},
		{UserID: userID, CategoryTitle: "Transport", Amount: money.NewFromInt(30), Date: model.Date{Year: 2026, Month: time.October, Day: 15}},
		{UserID: userID, CategoryTitle: "Transport", Amount: money.NewFromInt(100), Date: model.Date{Year: 2026, Month: time.September, Day: 30}},
		{UserID: otherUserID, CategoryTitle: "Food", Amount: money.NewFromInt(1000), Date: model.Date{Year: 2026, Month: time.October, Day: 2}},
	}
	for _, expense := range expenses {
		inserted, err := expenseStore.Create(ctx, &expense)
		require.NoError(t, err)
		require.True(t, inserted)
	}

	testCases := [...]struct {
		desc     string
		filter   service.SumExpensesFilter
		expected map[string]string
		order    []string
	}{
		{
			desc:     "october totals ordered by total",
			filter:   service.SumExpensesFilter{UserID: userID, From: october.FirstDay(), To: october.LastDay()},
			expected: map[string]string{"Transport": "30.00", "Food": "14.75"},
			order:    []string{"Transport", "Food"},
		},
		{
			desc:     "all time totals",
			filter:   service.SumExpensesFilter{UserID: userID},
			expected: map[string]string{"Transport": "130.00", "Food": "14.75"},
			order:    []string{"Transport", "Food"},
		},
		{
			desc:     "empty month",
			filter:   service.SumExpensesFilter{UserID: userID, From: model.Date{Year: 2026, Month: time.November, Day: 1}, To: model.Date{Year: 2026, Month: time.November, Day: 30}},
			expected: map[string]string{},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := expenseStore.SumByCategory(ctx, tc.filter)
			require.NoError(t, err)
			require.Len(t, actual, len(tc.expected))

			for i, total := range actual {
				assert.Equal(t, tc.expected[total.Title], total.Total.String())
				assert.Equal(t, tc.order[i], total.Title)
			}
		})
	}
}
