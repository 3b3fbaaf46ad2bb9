package service

import (
	"context"

	"github.com/VladPetriv/expense_bot/internal/model"
)

// Services contains all services.
type Services struct {
	Conversation ConversationService
	Event        EventService
}

// ConversationService drives the add expense conversation of a user.
//
//go:generate mockery --dir . --name ConversationService --output ./mocks
type ConversationService interface {
	// HandleEvent computes the transition for the event and executes its effects.
	HandleEvent(ctx context.Context, event model.Event) error
}

// EventService provides functionality for receiving updates from bot and reacting on them.
type EventService interface {
	// Listen polls updates on a fixed interval until ctx is done.
	Listen(ctx context.Context) error
	// Poll fetches and handles one batch of updates.
	Poll(ctx context.Context)
	// Cursor returns the id of the next update to fetch.
	Cursor() int
}
