package model

import (
	"fmt"
	"regexp"

	"github.com/VladPetriv/expense_bot/pkg/errs"
	"github.com/VladPetriv/expense_bot/pkg/money"
)

// ErrInvalidAmount happens when expense amount does not match amountPattern.
var ErrInvalidAmount = errs.New("invalid expense amount")

// amountPattern accepts 0 or a number without leading zeros, optionally
// followed by '.' or ',' and one or two fraction digits.
var amountPattern = regexp.MustCompile(`^(0|[1-9]\d*)([.,]\d{1,2})?$`)

// IsValidAmount reports whether value is an acceptable expense amount.
func IsValidAmount(value string) bool {
	return amountPattern.MatchString(value)
}

// ParseAmount validates and parses an expense amount.
func ParseAmount(value string) (money.Money, error) {
	if !IsValidAmount(value) {
		return money.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	amount, err := money.NewFromString(value)
	if err != nil {
		return money.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	return amount, nil
}
