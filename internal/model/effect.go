package model

import "github.com/VladPetriv/expense_bot/pkg/money"

// EffectKind identifies a side effect requested by the state machine.
type EffectKind string

const (
	// EffectSendMessage sends a text message with optional inline keyboard.
	EffectSendMessage EffectKind = "send_message"
	// EffectDeleteMessage deletes a message from the chat.
	EffectDeleteMessage EffectKind = "delete_message"
	// EffectAddCategory persists a category, duplicates are ignored.
	EffectAddCategory EffectKind = "add_category"
	// EffectAddExpense persists an expense.
	EffectAddExpense EffectKind = "add_expense"
	// EffectSendReport sends totals per category for a month.
	EffectSendReport EffectKind = "send_report"
)

// Effect represents a declarative side effect executed by the conversation service.
type Effect struct {
	Kind   EffectKind
	ChatID int64
	UserID int64

	// MessageID is set for EffectDeleteMessage.
	MessageID int
	// Text and Keyboard are set for EffectSendMessage.
	Text     string
	Keyboard []InlineKeyboardRow

	// CategoryName is set for EffectAddCategory and EffectAddExpense.
	CategoryName string
	// Amount and Date are set for EffectAddExpense.
	Amount money.Money
	Date   Date
	// Period is set for EffectSendReport.
	Period Period
}

// IsPersistent reports whether the effect writes to the database.
func (e Effect) IsPersistent() bool {
	return e.Kind == EffectAddCategory || e.Kind == EffectAddExpense
}

// SendMessage returns a send message effect.
func SendMessage(chatID int64, text string, keyboard ...InlineKeyboardRow) Effect {
	return Effect{
		Kind:     EffectSendMessage,
		ChatID:   chatID,
		Text:     text,
		Keyboard: keyboard,
	}
}

// DeleteMessage returns a delete message effect.
func DeleteMessage(chatID int64, messageID int) Effect {
	return Effect{
		Kind:      EffectDeleteMessage,
		ChatID:    chatID,
		MessageID: messageID,
	}
}

// InlineKeyboardRow represents inline keyboard row with buttons.
type InlineKeyboardRow struct {
	Buttons []InlineKeyboardButton
}

// InlineKeyboardButton represents an inline keyboard button with text and callback data.
type InlineKeyboardButton struct {
	Text string
	Data string
}
