package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/VladPetriv/expense_bot/internal/model"
)

// Texts sent to users.
const (
	chooseCategoryText       = "choose category"
	addCategoryButtonText    = "add category"
	provideCategoryNameText  = "please, provide category name"
	categoryConfirmationText = "[category confirmation]: %s"
	confirmButtonText        = "confirm"
	rejectButtonText         = "reject"
	provideExpenseDateText   = "please, provide expense date"
	provideExpenseAmountText = "please, provide expense amount"
	invalidExpenseAmountText = "invalid expense amount. try again"
	expenseAddedText         = "expense added"
	chooseMonthText          = "choose month of %d"

	categoryAddedText        = "category '%s' added"
	categoryAlreadyAddedText = "category '%s' has already been added"
	expenseNotAddedText      = "expense was not added: category '%s' does not exist"
)

const monthsPerRow = 4

// StateChange describes what happens with the stored state after a transition.
type StateChange int

const (
	// StateUnchanged keeps the stored state as is.
	StateUnchanged StateChange = iota
	// StateSet replaces the stored state with Transition.Next.
	StateSet
	// StateCleared removes the stored state, the user becomes idle.
	StateCleared
)

// Transition represents the outcome of an event applied to a state.
type Transition struct {
	Change  StateChange
	Next    model.State
	Effects []model.Effect
}

// IsNoop reports whether the transition neither changes state nor has effects.
func (t Transition) IsNoop() bool {
	return t.Change == StateUnchanged && len(t.Effects) == 0
}

func unchanged(effects ...model.Effect) Transition {
	return Transition{Change: StateUnchanged, Effects: effects}
}

func set(next model.State, effects ...model.Effect) Transition {
	return Transition{Change: StateSet, Next: next, Effects: effects}
}

func cleared(effects ...model.Effect) Transition {
	return Transition{Change: StateCleared, Effects: effects}
}

// Transit decides the next state and effects for the event, current is nil for idle users.
// It performs no I/O, now is used only to build the month picker.
func Transit(current *model.State, event model.Event, now time.Time) Transition {
	switch event.Kind {
	case model.EventText:
		return transitText(current, event, now)
	case model.EventCallback:
		return transitCallback(current, event)
	default:
		return unchanged()
	}
}

func transitText(current *model.State, event model.Event, now time.Time) Transition {
	switch event.Text {
	case "":
		return unchanged()
	case model.BotAddExpenseCommand:
		return unchanged(chooseCategoryMessage(event.ChatID))
	case model.BotReportCommand:
		return unchanged(chooseMonthMessage(event.ChatID, now.Year()))
	}

	switch {
	case current.Is(model.StateAwaitingCategoryName):
		name := strings.TrimSpace(event.Text)
		if name == "" || strings.HasPrefix(name, "/") {
			break
		}

		return set(
			model.AwaitingCategoryNameConfirmation(event.MessageID, name),
			model.SendMessage(
				event.ChatID,
				fmt.Sprintf(categoryConfirmationText, name),
				model.InlineKeyboardRow{Buttons: []model.InlineKeyboardButton{
					{Text: confirmButtonText, Data: model.ConfirmCategoryNameToken(event.MessageID)},
					{Text: rejectButtonText, Data: model.RejectCategoryNameToken(event.MessageID)},
				}},
			),
		)

	case current.Is(model.StateAwaitingExpenseAmount):
		amount, err := model.ParseAmount(event.Text)
		if err != nil {
			return unchanged(model.SendMessage(event.ChatID, invalidExpenseAmountText))
		}

		return cleared(
			model.Effect{
				Kind:         model.EffectAddExpense,
				ChatID:       event.ChatID,
				UserID:       event.UserID,
				CategoryName: current.CategoryName,
				Amount:       amount,
				Date:         current.Date,
			},
			model.SendMessage(event.ChatID, expenseAddedText),
		)
	}

	return unchanged(model.DeleteMessage(event.ChatID, event.MessageID))
}

func transitCallback(current *model.State, event model.Event) Transition {
	command := event.Command

	switch command.Kind {
	case model.CommandAddCategory:
		return set(
			model.AwaitingCategoryName(),
			model.SendMessage(event.ChatID, provideCategoryNameText),
		)

	case model.CommandConfirmCategoryName:
		if !isAwaitingPrompt(current, model.StateAwaitingCategoryNameConfirmation, command.MessageID) {
			return unchanged()
		}

		return set(
			model.AwaitingExpenseDate(event.MessageID, current.CategoryName),
			model.Effect{
				Kind:         model.EffectAddCategory,
				ChatID:       event.ChatID,
				UserID:       event.UserID,
				CategoryName: current.CategoryName,
			},
			model.SendMessage(
				event.ChatID,
				provideExpenseDateText,
				model.InlineKeyboardRow{Buttons: []model.InlineKeyboardButton{
					{Text: string(model.DateKindToday), Data: model.PickExpenseDateToken(event.MessageID, model.DateKindToday)},
				}},
				model.InlineKeyboardRow{Buttons: []model.InlineKeyboardButton{
					{Text: string(model.DateKindYesterday), Data: model.PickExpenseDateToken(event.MessageID, model.DateKindYesterday)},
				}},
			),
		)

	case model.CommandRejectCategoryName:
		if !isAwaitingPrompt(current, model.StateAwaitingCategoryNameConfirmation, command.MessageID) {
			return unchanged()
		}

		return cleared(chooseCategoryMessage(event.ChatID))

	case model.CommandPickExpenseDate:
		if !isAwaitingPrompt(current, model.StateAwaitingExpenseDate, command.MessageID) {
			return unchanged()
		}

		return set(
			model.AwaitingExpenseAmount(current.CategoryName, command.Date),
			model.SendMessage(event.ChatID, provideExpenseAmountText),
		)

	case model.CommandShowReport:
		return unchanged(model.Effect{
			Kind:   model.EffectSendReport,
			ChatID: event.ChatID,
			UserID: event.UserID,
			Period: command.Period,
		})

	default:
		return unchanged()
	}
}

// isAwaitingPrompt reports whether the state has the kind and waits for a callback of the prompt.
func isAwaitingPrompt(current *model.State, kind model.StateKind, promptMessageID int) bool {
	return current.Is(kind) && current.PromptMessageID == promptMessageID
}

func chooseCategoryMessage(chatID int64) model.Effect {
	return model.SendMessage(
		chatID,
		chooseCategoryText,
		model.InlineKeyboardRow{Buttons: []model.InlineKeyboardButton{
			{Text: addCategoryButtonText, Data: model.AddCategoryToken()},
		}},
	)
}

func chooseMonthMessage(chatID int64, year int) model.Effect {
	rows := make([]model.InlineKeyboardRow, 0, 12/monthsPerRow)

	var row model.InlineKeyboardRow
	for month := time.January; month <= time.December; month++ {
		row.Buttons = append(row.Buttons, model.InlineKeyboardButton{
			Text: month.String()[:3],
			Data: model.ShowReportToken(model.Period{Year: year, Month: month}),
		})

		if len(row.Buttons) == monthsPerRow {
			rows = append(rows, row)
			row = model.InlineKeyboardRow{}
		}
	}

	return model.SendMessage(chatID, fmt.Sprintf(chooseMonthText, year), rows...)
}
