package money

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents an exact amount of money.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
var Zero = NewFromInt(0)

// NewFromString parses an amount, both '.' and ',' are accepted as a decimal separator.
// An empty string is parsed as Zero.
func NewFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, nil
	}

	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}

	return Money{d}, nil
}

// NewFromInt returns amount from integer number.
func NewFromInt(i int64) Money {
	return Money{decimal.NewFromInt(i)}
}

// NewFromFloat returns amount from float number.
func NewFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// Add returns left + right amounts.
func (m Money) Add(right Money) Money {
	return Money{m.decimal.Add(right.decimal)}
}

// Sub returns left - right amounts.
func (m Money) Sub(right Money) Money {
	return Money{m.decimal.Sub(right.decimal)}
}

// Inc increments left amount by right.
func (m *Money) Inc(right Money) {
	m.decimal = m.decimal.Add(right.decimal)
}

// Mul returns left * right amounts.
func (m Money) Mul(right Money) Money {
	return Money{m.decimal.Mul(right.decimal)}
}

// Div returns left / right amounts, dividing by zero returns Zero.
func (m Money) Div(right Money) Money {
	if right.IsZero() {
		return Zero
	}

	return Money{m.decimal.Div(right.decimal)}
}

// Equal reports whether amounts are numerically equal.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// GreaterThan reports whether left amount is greater than right.
func (m Money) GreaterThan(right Money) bool {
	return m.decimal.GreaterThan(right.decimal)
}

// LessThan reports whether left amount is less than right.
func (m Money) LessThan(right Money) bool {
	return m.decimal.LessThan(right.decimal)
}

// IsZero reports whether amount equals zero.
func (m Money) IsZero() bool {
	return m.decimal.IsZero()
}

// Float64 returns the nearest float representation, it is meant for rendering only.
func (m Money) Float64() float64 {
	f, _ := m.decimal.Float64()
	return f
}

// String returns amount rounded to 2 places after the decimal point.
func (m Money) String() string {
	return m.decimal.StringFixed(2)
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = Zero
		return nil
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	case float64:
		*m = NewFromFloat(v)
		return nil
	case int64:
		*m = NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("unsupported money type: %T", value)
	}
}

func (m *Money) scanString(s string) error {
	parsed, err := NewFromString(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
