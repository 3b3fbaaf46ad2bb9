// Package expenselog parses plaintext monthly expense logs.
//
// A log consists of blocks separated by blank lines. The first line of a block
// is the day of month, every following line is a category name with one or more
// values spent on that day:
//
//	1
//	food 12.5 3
//	taxi 7
//
//	2
//	food 4.20
package expenselog

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/pkg/errs"
	"github.com/VladPetriv/expense_bot/pkg/money"
)

var (
	// ErrInvalidDay happens when the first line of a block is not a day number.
	ErrInvalidDay = errs.New("invalid day")
	// ErrDayOutOfRange happens when the day does not exist in the month.
	ErrDayOutOfRange = errs.New("day out of range")
	// ErrDuplicateDay happens when two blocks describe the same day.
	ErrDuplicateDay = errs.New("duplicate day")
	// ErrDuplicateCategory happens when a category is listed twice within a day.
	ErrDuplicateCategory = errs.New("duplicate category")
	// ErrInvalidValue happens when a value is not a non-negative number.
	ErrInvalidValue = errs.New("invalid value")
)

// Log represents aggregated expenses of a month.
type Log struct {
	Period model.Period
	// Days holds every day of the month in order, days without entries have no totals.
	Days []Day
	// Categories are ordered by the number of days they appear on, most frequent first.
	Categories []string
}

// Day represents totals per category spent on a day.
type Day struct {
	Day    int
	Totals map[string]money.Money
}

// Total returns the sum of all categories of the day.
func (d Day) Total() money.Money {
	total := money.Zero
	for _, value := range d.Totals {
		total.Inc(value)
	}

	return total
}

// Parse reads the log of the period.
func Parse(r io.Reader, period model.Period) (*Log, error) {
	log := &Log{
		Period: period,
		Days:   make([]Day, period.Days()),
	}
	for i := range log.Days {
		log.Days[i] = Day{Day: i + 1, Totals: make(map[string]money.Money)}
	}

	var (
		frequency = make(map[string]int)
		current   *Day
		lineNo    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			current = nil
			continue
		}

		if current == nil {
			day, err := parseDay(line, period)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			current = &log.Days[day-1]
			if len(current.Totals) != 0 {
				return nil, fmt.Errorf("line %d: %w: %d", lineNo, ErrDuplicateDay, day)
			}
			continue
		}

		category, total, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if _, ok := current.Totals[category]; ok {
			return nil, fmt.Errorf("line %d: %w: day %d, category %q", lineNo, ErrDuplicateCategory, current.Day, category)
		}

		current.Totals[category] = total
		frequency[category]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	log.Categories = orderByFrequency(frequency)

	return log, nil
}

func parseDay(line string, period model.Period) (int, error) {
	day, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, line)
	}

	if day < 1 || day > period.Days() {
		return 0, fmt.Errorf("%w: %d is not a day of %s", ErrDayOutOfRange, day, period)
	}

	return day, nil
}

func parseEntry(line string) (string, money.Money, error) {
	fields := strings.Fields(line)
	category := fields[0]

	total := money.Zero
	for _, field := range fields[1:] {
		value, err := money.NewFromString(field)
		if err != nil || value.LessThan(money.Zero) {
			return "", money.Zero, fmt.Errorf("%w: %q", ErrInvalidValue, field)
		}

		total.Inc(value)
	}

	return category, total, nil
}

func orderByFrequency(frequency map[string]int) []string {
	categories := make([]string, 0, len(frequency))
	for category := range frequency {
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool {
		left, right := categories[i], categories[j]
		if frequency[left] != frequency[right] {
			return frequency[left] > frequency[right]
		}

		return left < right
	})

	return categories
}

// CategoryTotals returns the sum of every category over the month.
func (l *Log) CategoryTotals() map[string]money.Money {
	totals := make(map[string]money.Money, len(l.Categories))
	for _, day := range l.Days {
		for category, value := range day.Totals {
			totals[category] = totals[category].Add(value)
		}
	}

	return totals
}

// Total returns the sum of all expenses of the month.
func (l *Log) Total() money.Money {
	total := money.Zero
	for _, day := range l.Days {
		total.Inc(day.Total())
	}

	return total
}

// MaxDayTotal returns the largest daily sum.
func (l *Log) MaxDayTotal() money.Money {
	maxTotal := money.Zero
	for _, day := range l.Days {
		if total := day.Total(); total.GreaterThan(maxTotal) {
			maxTotal = total
		}
	}

	return maxTotal
}

// Average represents spending per day.
type Average struct {
	// Days is the number of days the month total is spread over.
	Days   int
	Total  money.Money
	Totals map[string]money.Money
}

// Average spreads month totals over the elapsed days of the current month or
// over all days of a past month.
func (l *Log) Average(now time.Time) Average {
	days := l.Period.Days()
	if model.PeriodOf(now) == l.Period {
		days = now.Day()
	}

	divisor := money.NewFromInt(int64(days))

	average := Average{
		Days:   days,
		Total:  l.Total().Div(divisor),
		Totals: make(map[string]money.Money, len(l.Categories)),
	}
	for category, total := range l.CategoryTotals() {
		average.Totals[category] = total.Div(divisor)
	}

	return average
}
