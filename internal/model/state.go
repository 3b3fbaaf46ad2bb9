package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StateKind identifies a step of the add expense flow.
type StateKind string

const (
	// StateAwaitingCategoryName means the next text message is a category name.
	StateAwaitingCategoryName StateKind = "awaiting_category_name"
	// StateAwaitingCategoryNameConfirmation means the bot waits for confirm/reject of the echoed name.
	StateAwaitingCategoryNameConfirmation StateKind = "awaiting_category_name_confirmation"
	// StateAwaitingExpenseDate means the bot waits for today/yesterday pick.
	StateAwaitingExpenseDate StateKind = "awaiting_expense_date"
	// StateAwaitingExpenseAmount means the next text message is an expense amount.
	StateAwaitingExpenseAmount StateKind = "awaiting_expense_amount"
)

// State represents the current conversation state of a user.
// Idle is not a state: it is the absence of one, represented by nil *State.
type State struct {
	Kind StateKind `json:"kind"`

	// PromptMessageID is the message the next callback must reference.
	// Set for StateAwaitingCategoryNameConfirmation and StateAwaitingExpenseDate.
	PromptMessageID int    `json:"promptMessageId,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
	// Date is set for StateAwaitingExpenseAmount.
	Date Date `json:"date"`
}

// AwaitingCategoryName returns a state that waits for a category name.
func AwaitingCategoryName() State {
	return State{Kind: StateAwaitingCategoryName}
}

// AwaitingCategoryNameConfirmation returns a state that waits for confirmation of the category name.
func AwaitingCategoryNameConfirmation(promptMessageID int, categoryName string) State {
	return State{
		Kind:            StateAwaitingCategoryNameConfirmation,
		PromptMessageID: promptMessageID,
		CategoryName:    categoryName,
	}
}

// AwaitingExpenseDate returns a state that waits for an expense date.
func AwaitingExpenseDate(promptMessageID int, categoryName string) State {
	return State{
		Kind:            StateAwaitingExpenseDate,
		PromptMessageID: promptMessageID,
		CategoryName:    categoryName,
	}
}

// AwaitingExpenseAmount returns a state that waits for an expense amount.
func AwaitingExpenseAmount(categoryName string, date Date) State {
	return State{
		Kind:         StateAwaitingExpenseAmount,
		CategoryName: categoryName,
		Date:         date,
	}
}

// Is reports whether the state is not nil and has the given kind.
func (s *State) Is(kind StateKind) bool {
	return s != nil && s.Kind == kind
}

// Validate checks that the kind is known and the payload required by it is present.
func (s State) Validate() error {
	switch s.Kind {
	case StateAwaitingCategoryName:
		return nil
	case StateAwaitingCategoryNameConfirmation, StateAwaitingExpenseDate:
		if s.PromptMessageID <= 0 || s.CategoryName == "" {
			return fmt.Errorf("state %s requires prompt message id and category name", s.Kind)
		}
		return nil
	case StateAwaitingExpenseAmount:
		if s.CategoryName == "" || s.Date.IsZero() {
			return fmt.Errorf("state %s requires category name and date", s.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown state kind: %q", s.Kind)
	}
}

// Value implements the driver.Valuer interface.
func (s State) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// Scan implements the sql.Scanner interface.
func (s *State) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("expected []byte or string, got %T", value)
	}

	return json.Unmarshal(data, s)
}
