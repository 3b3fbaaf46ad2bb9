package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date represents a calendar day without time and location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return DateOf(t), nil
}

// Time returns the midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date shifted by n days, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Time().Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	err := json.Unmarshal(data, &value)
	if err != nil {
		return err
	}

	if value == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements the driver.Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the sql.Scanner interface.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("unsupported date type: %T", value)
	}
}

func (d *Date) scanString(value string) error {
	// Some drivers return dates with time part attached.
	if len(value) > len(dateLayout) {
		value = strings.SplitN(value, "T", 2)[0]
		value = strings.SplitN(value, " ", 2)[0]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Period represents a calendar month of a specific year.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the month that contains t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a period in YYYY-MM format.
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Period{}, fmt.Errorf("parse period %q: %w", value, err)
	}

	return PeriodOf(t), nil
}

// FirstDay returns the first day of the period.
func (p Period) FirstDay() Date {
	return Date{Year: p.Year, Month: p.Month, Day: 1}
}

// LastDay returns the last day of the period.
func (p Period) LastDay() Date {
	return DateOf(p.FirstDay().Time().AddDate(0, 1, -1))
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.LastDay().Day
}

// Contains reports whether the date belongs to the period.
func (p Period) Contains(d Date) bool {
	return d.Year == p.Year && d.Month == p.Month
}

// Token returns the compact YYYY-MM form of the period.
func (p Period) Token() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// ParseMonth parses month given by number (1-12), full name or three letter abbreviation.
func ParseMonth(value string) (time.Month, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	number, err := strconv.Atoi(value)
	if err == nil {
		if number < 1 || number > 12 {
			return 0, fmt.Errorf("month %d is out of range", number)
		}

		return time.Month(number), nil
	}

	for month := time.January; month <= time.December; month++ {
		name := strings.ToLower(month.String())
		if value == name || value == name[:3] {
			return month, nil
		}
	}

	return 0, fmt.Errorf("unknown month %q", value)
}
