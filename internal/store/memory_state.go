package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
)

type memoryStateStore struct {
	mu     sync.RWMutex
	states map[int64]model.State
}

var _ service.StateStore = (*memoryStateStore)(nil)

// NewMemoryState returns new instance of in-memory state store, states are lost on restart.
func NewMemoryState() *memoryStateStore {
	return &memoryStateStore{
		states: make(map[int64]model.State),
	}
}

func (m *memoryStateStore) Get(_ context.Context, userID int64) (*model.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[userID]
	if !ok {
		return nil, nil
	}

	return &state, nil
}

func (m *memoryStateStore) Set(_ context.Context, userID int64, state model.State) error {
	err := state.Validate()
	if err != nil {
		return fmt.Errorf("validate state: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[userID] = state
	return nil
}

func (m *memoryStateStore) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, userID)
	return nil
}
