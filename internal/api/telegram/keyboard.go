package telegram

import (
	"fmt"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
)

const maxButtonsPerMessage = 100

func createInlineKeyboard(rows []model.InlineKeyboardRow) (*telego.InlineKeyboardMarkup, error) {
	convertedRows := make([][]telego.InlineKeyboardButton, 0, len(rows))

	var totalButtonsCount int

	for _, r := range rows {
		buttons := make([]telego.InlineKeyboardButton, 0, len(r.Buttons))

		for _, b := range r.Buttons {
			totalButtonsCount++

			inlineKeyboardButton := telegoutil.
				InlineKeyboardButton(b.Text).
				WithCallbackData(b.Text)

			if b.Data != "" {
				inlineKeyboardButton = inlineKeyboardButton.WithCallbackData(b.Data)
			}

			buttons = append(buttons, inlineKeyboardButton)
		}

		convertedRows = append(convertedRows, buttons)
	}

	if totalButtonsCount > maxButtonsPerMessage {
		return nil, fmt.Errorf("inline keyboard has %d buttons, at most %d allowed", totalButtonsCount, maxButtonsPerMessage)
	}

	return telegoutil.InlineKeyboard(convertedRows...), nil
}
