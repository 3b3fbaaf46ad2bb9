package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCaseDB := createTestDB(t, "state_set_get_delete")
	userStore := store.NewUser(testCaseDB)

	stores := map[string]service.StateStore{
		"memory":   store.NewMemoryState(),
		"database": store.NewState(testCaseDB),
	}

	var userID int64 = 6000
	for name, stateStore := range stores {
		userID++
		t.Run(name, func(t *testing.T) {
			require.NoError(t, userStore.CreateIfNotExists(ctx, userID))
			testStateStore(ctx, t, stateStore, userID)
		})
	}
}

func testStateStore(ctx context.Context, t *testing.T, stateStore service.StateStore, userID int64) {
	t.Helper()

	state, err := stateStore.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, state, "unknown user is idle")

	steps := [...]model.State{
		model.AwaitingCategoryName(),
		model.AwaitingCategoryNameConfirmation(10, "Groceries"),
		model.AwaitingExpenseDate(11, "Groceries"),
		model.AwaitingExpenseAmount("Groceries", model.Date{Year: 2026, Month: time.October, Day: 16}),
	}
	for _, step := range steps {
		require.NoError(t, stateStore.Set(ctx, userID, step))

		state, err = stateStore.Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, step, *state, "set overwrites the only state of user")
	}

	require.NoError(t, stateStore.Delete(ctx, userID))

	state, err = stateStore.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, state, "delete followed by get returns no state")

	assert.NoError(t, stateStore.Delete(ctx, userID), "deleting absent state is not an error")
	assert.Error(t, stateStore.Set(ctx, userID, model.State{Kind: "unknown"}))
}

func TestMemoryState_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	stateStore := store.NewMemoryState()

	require.NoError(t, stateStore.Set(ctx, 1, model.AwaitingCategoryNameConfirmation(10, "Food")))

	state, err := stateStore.Get(ctx, 1)
	require.NoError(t, err)
	state.CategoryName = "changed"

	state, err = stateStore.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Food", state.CategoryName)
}

func TestMemoryState_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	stateStore := store.NewMemoryState()

	const users = 20

	var wg sync.WaitGroup
	wg.Add(users * 3)
	for i := 0; i < users; i++ {
		i := i
		userID := int64(i)

		go func() {
			defer wg.Done()
			assert.NoError(t, stateStore.Set(ctx, userID, model.AwaitingCategoryNameConfirmation(i+1, "Food")))
		}()
		go func() {
			defer wg.Done()
			_, err := stateStore.Get(ctx, userID)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, stateStore.Delete(ctx, userID+users))
		}()
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		state, err := stateStore.Get(ctx, int64(i))
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, i+1, state.PromptMessageID)
	}
}
