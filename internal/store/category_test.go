package store_test

import (
	"context"
	"testing"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_CreateIfNotExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCaseDB := createTestDB(t, "category_create_if_not_exists")
	userStore := store.NewUser(testCaseDB)
	categoryStore := store.NewCategory(testCaseDB)

	const userID1, userID2 = int64(2001), int64(2002)
	for _, userID := range [...]int64{userID1, userID2} {
		require.NoError(t, userStore.CreateIfNotExists(ctx, userID))
	}

	inserted, err := categoryStore.CreateIfNotExists(ctx, &model.Category{UserID: userID1, Title: "Groceries"})
	require.NoError(t, err)
	assert.True(t, inserted, "first insert must create category")

	inserted, err = categoryStore.CreateIfNotExists(ctx, &model.Category{UserID: userID1, Title: "Groceries"})
	require.NoError(t, err)
	assert.False(t, inserted, "second insert must be ignored")

	inserted, err = categoryStore.CreateIfNotExists(ctx, &model.Category{UserID: userID2, Title: "Groceries"})
	require.NoError(t, err)
	assert.True(t, inserted, "categories are unique per user")

	_, err = categoryStore.CreateIfNotExists(ctx, &model.Category{UserID: 9999, Title: "Groceries"})
	assert.Error(t, err, "category of unknown user violates foreign key")
}

func TestCategory_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCaseDB := createTestDB(t, "category_get")
	userStore := store.NewUser(testCaseDB)
	categoryStore := store.NewCategory(testCaseDB)

	const userID = int64(3001)
	require.NoError(t, userStore.CreateIfNotExists(ctx, userID))

	category := &model.Category{UserID: userID, Title: "Transport"}
	_, err := categoryStore.CreateIfNotExists(ctx, category)
	require.NoError(t, err)

	testCases := [...]struct {
		desc     string
		filter   service.GetCategoryFilter
		expected *model.Category
	}{
		{
			desc:   "found by user and title",
			filter: service.GetCategoryFilter{UserID: userID, Title: "Transport"},
			expected: &model.Category{
				ID:     category.ID,
				UserID: userID,
				Title:  "Transport",
			},
		},
		{
			desc:   "not found because title differs",
			filter: service.GetCategoryFilter{UserID: userID, Title: "Rent"},
		},
		{
			desc:   "not found because user differs",
			filter: service.GetCategoryFilter{UserID: userID + 1, Title: "Transport"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := categoryStore.Get(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
