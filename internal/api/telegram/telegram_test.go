package telegram

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	updates []telego.Update
	err     error

	getUpdatesParams *telego.GetUpdatesParams
	sent             []*telego.SendMessageParams
	deleted          []*telego.DeleteMessageParams
	answered         []*telego.AnswerCallbackQueryParams
}

func (f *fakeBot) GetUpdates(params *telego.GetUpdatesParams) ([]telego.Update, error) {
	f.getUpdatesParams = params
	return f.updates, f.err
}

func (f *fakeBot) SendMessage(params *telego.SendMessageParams) (*telego.Message, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.sent = append(f.sent, params)
	return &telego.Message{MessageID: 100 + len(f.sent)}, nil
}

func (f *fakeBot) DeleteMessage(params *telego.DeleteMessageParams) error {
	f.deleted = append(f.deleted, params)
	return f.err
}

func (f *fakeBot) AnswerCallbackQuery(params *telego.AnswerCallbackQueryParams) error {
	f.answered = append(f.answered, params)
	return f.err
}

func TestConvertUpdate(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		input    telego.Update
		expected model.Update
	}{
		{
			desc: "text message",
			input: telego.Update{
				UpdateID: 7,
				Message: &telego.Message{
					MessageID: 15,
					From:      &telego.User{ID: 20},
					Chat:      telego.Chat{ID: 30},
					Text:      "/add_expense",
				},
			},
			expected: model.Update{
				ID:      7,
				ChatID:  30,
				UserID:  20,
				Message: &model.Message{ID: 15, Text: "/add_expense"},
			},
		},
		{
			desc: "message without sender",
			input: telego.Update{
				UpdateID: 8,
				Message: &telego.Message{
					MessageID: 16,
					Chat:      telego.Chat{ID: 30},
					Text:      "hi",
				},
			},
			expected: model.Update{
				ID:      8,
				ChatID:  30,
				Message: &model.Message{ID: 16, Text: "hi"},
			},
		},
		{
			desc: "callback query",
			input: telego.Update{
				UpdateID: 9,
				CallbackQuery: &telego.CallbackQuery{
					ID:   "cb",
					From: telego.User{ID: 20},
					Message: &telego.Message{
						MessageID: 17,
						Chat:      telego.Chat{ID: 30},
					},
					Data: "ccn:15",
				},
			},
			expected: model.Update{
				ID:       9,
				ChatID:   30,
				UserID:   20,
				Callback: &model.Callback{ID: "cb", Data: "ccn:15", MessageID: 17},
			},
		},
		{
			desc: "callback query without message",
			input: telego.Update{
				UpdateID: 10,
				CallbackQuery: &telego.CallbackQuery{
					ID:   "cb",
					From: telego.User{ID: 20},
					Data: "add_category",
				},
			},
			expected: model.Update{
				ID:       10,
				UserID:   20,
				Callback: &model.Callback{ID: "cb", Data: "add_category"},
			},
		},
		{
			desc:     "unsupported update",
			input:    telego.Update{UpdateID: 11, EditedMessage: &telego.Message{Text: "edited"}},
			expected: model.Update{ID: 11},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, convertUpdate(tc.input))
		})
	}
}

func TestTelegramMessenger_GetUpdates(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{
		updates: []telego.Update{
			{UpdateID: 1, Message: &telego.Message{MessageID: 2, From: &telego.User{ID: 3}, Chat: telego.Chat{ID: 4}, Text: "x"}},
		},
	}
	messenger := &telegramMessenger{api: bot}

	updates, err := messenger.GetUpdates(context.Background(), 42, 1)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, 1, updates[0].ID)

	assert.Equal(t, 42, bot.getUpdatesParams.Offset)
	assert.Equal(t, 1, bot.getUpdatesParams.Limit)
	assert.Equal(t, []string{"message", "callback_query"}, bot.getUpdatesParams.AllowedUpdates)

	bot.err = errors.New("bad gateway")
	_, err = messenger.GetUpdates(context.Background(), 42, 1)
	assert.ErrorIs(t, err, bot.err)
}

func TestTelegramMessenger_SendMessage(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	messenger := &telegramMessenger{api: bot}

	messageID, err := messenger.SendMessage(context.Background(), service.SendMessageOptions{
		ChatID: 30,
		Text:   "[category confirmation]: Food",
		InlineKeyboard: []model.InlineKeyboardRow{
			{Buttons: []model.InlineKeyboardButton{
				{Text: "confirm", Data: "ccn:15"},
				{Text: "reject", Data: "rcn:15"},
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 101, messageID)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "[category confirmation]: Food", bot.sent[0].Text)
	assert.Equal(t, int64(30), bot.sent[0].ChatID.ID)

	markup, ok := bot.sent[0].ReplyMarkup.(*telego.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, "ccn:15", markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "rcn:15", markup.InlineKeyboard[0][1].CallbackData)

	_, err = messenger.SendMessage(context.Background(), service.SendMessageOptions{ChatID: 30, Text: "expense added"})
	require.NoError(t, err)
	assert.Nil(t, bot.sent[1].ReplyMarkup)
}

func TestTelegramMessenger_DeleteAndAnswer(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	messenger := &telegramMessenger{api: bot}

	require.NoError(t, messenger.DeleteMessage(context.Background(), 30, 15))
	require.Len(t, bot.deleted, 1)
	assert.Equal(t, int64(30), bot.deleted[0].ChatID.ID)
	assert.Equal(t, 15, bot.deleted[0].MessageID)

	require.NoError(t, messenger.AnswerCallback(context.Background(), "cb"))
	require.Len(t, bot.answered, 1)
	assert.Equal(t, "cb", bot.answered[0].CallbackQueryID)
}

func TestCreateInlineKeyboard(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		buttons       int
		expectedError bool
	}{
		{desc: "single button", buttons: 1},
		{desc: "exact limit", buttons: maxButtonsPerMessage},
		{desc: "over limit", buttons: maxButtonsPerMessage + 1, expectedError: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			var rows []model.InlineKeyboardRow
			for i := 0; i < tc.buttons; i++ {
				rows = append(rows, model.InlineKeyboardRow{
					Buttons: []model.InlineKeyboardButton{{Text: fmt.Sprintf("button %d", i)}},
				})
			}

			keyboard, err := createInlineKeyboard(rows)
			if tc.expectedError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, keyboard.InlineKeyboard, tc.buttons)
			assert.Equal(t, "button 0", keyboard.InlineKeyboard[0][0].CallbackData)
		})
	}
}
