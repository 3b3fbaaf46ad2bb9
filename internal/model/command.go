package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VladPetriv/expense_bot/pkg/errs"
)

// Text commands that can be received from bot.
const (
	// BotAddExpenseCommand starts the add expense flow.
	BotAddExpenseCommand string = "/add_expense"
	// BotReportCommand shows the month picker for the expenses report.
	BotReportCommand string = "/report"
)

// Callback token discriminators.
const (
	addCategoryToken         = "add_category"
	confirmCategoryNameToken = "ccn"
	rejectCategoryNameToken  = "rcn"
	pickExpenseDateToken     = "ped"
	showReportToken          = "rpt"

	tokenSeparator = ":"
)

var (
	// ErrUnrecognizedCommand happens when callback token has unknown shape.
	ErrUnrecognizedCommand = errs.New("unrecognized command")
	// ErrInvalidMessageID happens when message id embedded into token is not a positive integer.
	ErrInvalidMessageID = errs.New("invalid message id")
	// ErrUnknownDateKind happens when date kind of pick expense date token is not supported.
	ErrUnknownDateKind = errs.New("unknown date kind")
	// ErrInvalidReportPeriod happens when report token carries malformed month.
	ErrInvalidReportPeriod = errs.New("invalid report period")
)

// CommandKind identifies a decoded callback command.
type CommandKind string

const (
	// CommandAddCategory asks for a new category name.
	CommandAddCategory CommandKind = "add_category"
	// CommandConfirmCategoryName confirms the echoed category name.
	CommandConfirmCategoryName CommandKind = "confirm_category_name"
	// CommandRejectCategoryName rejects the echoed category name.
	CommandRejectCategoryName CommandKind = "reject_category_name"
	// CommandPickExpenseDate selects the expense date.
	CommandPickExpenseDate CommandKind = "pick_expense_date"
	// CommandShowReport requests the expenses report for a month.
	CommandShowReport CommandKind = "show_report"
)

// DateKind represents a relative date offered by the date picker.
type DateKind string

const (
	// DateKindToday resolves to the current date.
	DateKindToday DateKind = "today"
	// DateKindYesterday resolves to the current date minus one day.
	DateKindYesterday DateKind = "yesterday"
)

// Resolve returns the date relative to now.
func (d DateKind) Resolve(now time.Time) (Date, error) {
	switch d {
	case DateKindToday:
		return DateOf(now), nil
	case DateKindYesterday:
		return DateOf(now).AddDays(-1), nil
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrUnknownDateKind, string(d))
	}
}

// Command represents a decoded callback token.
type Command struct {
	Kind CommandKind

	// MessageID is set for confirm, reject and pick date commands.
	MessageID int
	// Date is set for CommandPickExpenseDate.
	Date Date
	// Period is set for CommandShowReport.
	Period Period
}

// ParseCommand decodes a callback token, now is used to resolve relative dates.
func ParseCommand(token string, now time.Time) (Command, error) {
	if token == addCategoryToken {
		return Command{Kind: CommandAddCategory}, nil
	}

	discriminator, payload, found := strings.Cut(token, tokenSeparator)
	if !found {
		return Command{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, token)
	}

	switch discriminator {
	case confirmCategoryNameToken, rejectCategoryNameToken:
		messageID, err := parseMessageID(payload)
		if err != nil {
			return Command{}, err
		}

		kind := CommandConfirmCategoryName
		if discriminator == rejectCategoryNameToken {
			kind = CommandRejectCategoryName
		}

		return Command{Kind: kind, MessageID: messageID}, nil

	case pickExpenseDateToken:
		rawMessageID, rawKind, _ := strings.Cut(payload, tokenSeparator)

		messageID, err := parseMessageID(rawMessageID)
		if err != nil {
			return Command{}, err
		}

		date, err := DateKind(rawKind).Resolve(now)
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: CommandPickExpenseDate, MessageID: messageID, Date: date}, nil

	case showReportToken:
		period, err := ParsePeriod(payload)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidReportPeriod, payload)
		}

		return Command{Kind: CommandShowReport, Period: period}, nil

	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, token)
	}
}

// parseMessageID accepts only the canonical decimal form produced by token builders.
func parseMessageID(value string) (int, error) {
	messageID, err := strconv.Atoi(value)
	if err != nil || messageID <= 0 || strconv.Itoa(messageID) != value {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMessageID, value)
	}

	return messageID, nil
}

// AddCategoryToken returns the callback token of the add category button.
func AddCategoryToken() string {
	return addCategoryToken
}

// ConfirmCategoryNameToken returns the callback token of the confirm button.
func ConfirmCategoryNameToken(messageID int) string {
	return confirmCategoryNameToken + tokenSeparator + strconv.Itoa(messageID)
}

// RejectCategoryNameToken returns the callback token of the reject button.
func RejectCategoryNameToken(messageID int) string {
	return rejectCategoryNameToken + tokenSeparator + strconv.Itoa(messageID)
}

// PickExpenseDateToken returns the callback token of a date picker button.
func PickExpenseDateToken(messageID int, kind DateKind) string {
	return pickExpenseDateToken + tokenSeparator + strconv.Itoa(messageID) + tokenSeparator + string(kind)
}

// ShowReportToken returns the callback token of a month picker button.
func ShowReportToken(period Period) string {
	return showReportToken + tokenSeparator + period.Token()
}
