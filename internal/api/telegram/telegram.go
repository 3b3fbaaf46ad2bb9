package telegram

import (
	"context"
	"fmt"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
)

// allowedUpdates lists update kinds the bot receives, others are filtered out by Telegram.
var allowedUpdates = []string{"message", "callback_query"}

// botAPI is the subset of telego.Bot used by the messenger.
type botAPI interface {
	GetUpdates(params *telego.GetUpdatesParams) ([]telego.Update, error)
	SendMessage(params *telego.SendMessageParams) (*telego.Message, error)
	DeleteMessage(params *telego.DeleteMessageParams) error
	AnswerCallbackQuery(params *telego.AnswerCallbackQueryParams) error
}

type telegramMessenger struct {
	api botAPI
}

var _ service.Messenger = (*telegramMessenger)(nil)

// Options represents options that required for creating new instance of telegram API.
type Options struct {
	// Token represents telegram bot token.
	Token string
	// Debug enables request logging of the telego client.
	Debug bool
}

// New creates a new instance of telegram API.
func New(opts Options) (*telegramMessenger, error) {
	bot, err := telego.NewBot(opts.Token, telego.WithDefaultLogger(opts.Debug, true))
	if err != nil {
		return nil, fmt.Errorf("init bot instance: %w", err)
	}

	return &telegramMessenger{api: bot}, nil
}

func (t *telegramMessenger) GetUpdates(_ context.Context, offset, limit int) ([]model.Update, error) {
	updates, err := t.api.GetUpdates(&telego.GetUpdatesParams{
		Offset:         offset,
		Limit:          limit,
		AllowedUpdates: allowedUpdates,
	})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	result := make([]model.Update, 0, len(updates))
	for _, update := range updates {
		result = append(result, convertUpdate(update))
	}

	return result, nil
}

func (t *telegramMessenger) SendMessage(_ context.Context, opts service.SendMessageOptions) (int, error) {
	message := telegoutil.Message(telegoutil.ID(opts.ChatID), opts.Text)

	if len(opts.InlineKeyboard) != 0 {
		keyboard, err := createInlineKeyboard(opts.InlineKeyboard)
		if err != nil {
			return 0, err
		}

		message = message.WithReplyMarkup(keyboard)
	}

	sent, err := t.api.SendMessage(message)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}

	return sent.MessageID, nil
}

func (t *telegramMessenger) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	err := t.api.DeleteMessage(&telego.DeleteMessageParams{
		ChatID:    telegoutil.ID(chatID),
		MessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}

func (t *telegramMessenger) AnswerCallback(_ context.Context, callbackID string) error {
	err := t.api.AnswerCallbackQuery(&telego.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
	if err != nil {
		return fmt.Errorf("answer callback query: %w", err)
	}

	return nil
}

// convertUpdate maps telegram update into the bot update, kinds other than
// messages and callback queries result in an update without payload.
func convertUpdate(update telego.Update) model.Update {
	result := model.Update{ID: update.UpdateID}

	switch {
	case update.Message != nil:
		message := update.Message

		result.ChatID = message.Chat.ID
		if message.From != nil {
			result.UserID = message.From.ID
		}
		result.Message = &model.Message{
			ID:   message.MessageID,
			Text: message.Text,
		}

	case update.CallbackQuery != nil:
		query := update.CallbackQuery

		result.UserID = query.From.ID
		result.Callback = &model.Callback{
			ID:   query.ID,
			Data: query.Data,
		}
		if query.Message != nil {
			result.ChatID = query.Message.Chat.ID
			result.Callback.MessageID = query.Message.MessageID
		}
	}

	return result
}
