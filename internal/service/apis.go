package service

import (
	"context"

	"github.com/VladPetriv/expense_bot/internal/model"
)

// APIs represents all external APIs.
type APIs struct {
	Messenger Messenger
}

// Messenger handles messaging operations between the application and messaging platform.
//
//go:generate mockery --dir . --name Messenger --output ./mocks
type Messenger interface {
	// GetUpdates returns up to limit updates with id not lower than offset, ordered by id.
	GetUpdates(ctx context.Context, offset, limit int) ([]model.Update, error)
	// SendMessage sends a text message with an optional inline keyboard and returns the sent message id.
	SendMessage(ctx context.Context, opts SendMessageOptions) (int, error)
	// DeleteMessage deletes a message from the chat.
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	// AnswerCallback acknowledges a callback so the client stops waiting for it.
	AnswerCallback(ctx context.Context, callbackID string) error
}

// SendMessageOptions represents options for sending a message.
type SendMessageOptions struct {
	ChatID         int64
	Text           string
	InlineKeyboard []model.InlineKeyboardRow
}
