package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/pkg/logger"
	"github.com/rs/zerolog"
)

type conversationService struct {
	logger *logger.Logger
	stores Stores
	apis   APIs
	now    func() time.Time
	locks  *userLocks
}

var _ ConversationService = (*conversationService)(nil)

// ConversationOptions represents input options for creating new instance of conversation service.
type ConversationOptions struct {
	Logger *logger.Logger
	Stores Stores
	APIs   APIs
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewConversation returns new instance of conversation service.
func NewConversation(opts *ConversationOptions) *conversationService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &conversationService{
		logger: opts.Logger,
		stores: opts.Stores,
		apis:   opts.APIs,
		now:    now,
		locks:  newUserLocks(),
	}
}

// HandleEvent applies the event to the user state. Persistent effects run first, then the state
// is committed, then the user is notified.
func (c *conversationService) HandleEvent(ctx context.Context, event model.Event) error {
	logger := c.logger.With().Str("name", "conversationService.HandleEvent").Logger()
	logger.Debug().Any("event", event).Msg("got args")

	unlock := c.locks.lock(event.UserID)
	defer unlock()

	state, err := c.stores.State.Get(ctx, event.UserID)
	if err != nil {
		logger.Error().Err(err).Msg("get state from store")
		return fmt.Errorf("get state from store: %w", err)
	}
	logger.Debug().Any("state", state).Msg("got state from store")

	transition := Transit(state, event, c.now())
	if transition.IsNoop() {
		logger.Debug().Msg("event does not match current state, ignoring")
		return nil
	}
	logger.Debug().Any("transition", transition).Msg("computed transition")

	outcome, err := c.persist(ctx, logger, transition.Effects)
	if err != nil {
		return err
	}

	err = c.commit(ctx, event.UserID, transition)
	if err != nil {
		logger.Error().Err(err).Msg("commit state")
		return fmt.Errorf("commit state: %w", err)
	}

	err = c.notify(ctx, logger, transition.Effects, outcome)
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", event.UserID).Msg("event handled")
	return nil
}

// persistOutcome carries text produced by persistent effects into the next sent message.
type persistOutcome struct {
	notice  string
	replace bool
}

func (o persistOutcome) apply(text string) string {
	switch {
	case o.notice == "":
		return text
	case o.replace:
		return o.notice
	default:
		return o.notice + "\n\n" + text
	}
}

func (c *conversationService) persist(ctx context.Context, logger zerolog.Logger, effects []model.Effect) (persistOutcome, error) {
	var outcome persistOutcome

	for _, effect := range effects {
		if !effect.IsPersistent() {
			continue
		}

		switch effect.Kind {
		case model.EffectAddCategory:
			inserted, err := c.stores.Category.CreateIfNotExists(ctx, &model.Category{
				UserID: effect.UserID,
				Title:  effect.CategoryName,
			})
			if err != nil {
				logger.Error().Err(err).Msg("create category")
				return outcome, fmt.Errorf("create category: %w", err)
			}
			logger.Info().Bool("inserted", inserted).Str("category", effect.CategoryName).Msg("category persisted")

			outcome.notice = fmt.Sprintf(categoryAlreadyAddedText, effect.CategoryName)
			if inserted {
				outcome.notice = fmt.Sprintf(categoryAddedText, effect.CategoryName)
			}

		case model.EffectAddExpense:
			inserted, err := c.stores.Expense.Create(ctx, &model.Expense{
				UserID:        effect.UserID,
				CategoryTitle: effect.CategoryName,
				Amount:        effect.Amount,
				Date:          effect.Date,
			})
			if err != nil {
				logger.Error().Err(err).Msg("create expense")
				return outcome, fmt.Errorf("create expense: %w", err)
			}

			if !inserted {
				logger.Warn().Str("category", effect.CategoryName).Msg("expense category not found")
				outcome = persistOutcome{notice: fmt.Sprintf(expenseNotAddedText, effect.CategoryName), replace: true}
				continue
			}
			logger.Info().Str("category", effect.CategoryName).Str("amount", effect.Amount.String()).Msg("expense persisted")
		}
	}

	return outcome, nil
}

func (c *conversationService) commit(ctx context.Context, userID int64, transition Transition) error {
	switch transition.Change {
	case StateSet:
		return c.stores.State.Set(ctx, userID, transition.Next)
	case StateCleared:
		return c.stores.State.Delete(ctx, userID)
	default:
		return nil
	}
}

func (c *conversationService) notify(ctx context.Context, logger zerolog.Logger, effects []model.Effect, outcome persistOutcome) error {
	for _, effect := range effects {
		if effect.IsPersistent() {
			continue
		}

		switch effect.Kind {
		case model.EffectSendMessage:
			_, err := c.apis.Messenger.SendMessage(ctx, SendMessageOptions{
				ChatID:         effect.ChatID,
				Text:           outcome.apply(effect.Text),
				InlineKeyboard: effect.Keyboard,
			})
			if err != nil {
				logger.Error().Err(err).Msg("send message")
				return fmt.Errorf("send message: %w", err)
			}
			outcome = persistOutcome{}

		case model.EffectDeleteMessage:
			err := c.apis.Messenger.DeleteMessage(ctx, effect.ChatID, effect.MessageID)
			if err != nil {
				logger.Error().Err(err).Msg("delete message")
				return fmt.Errorf("delete message: %w", err)
			}

		case model.EffectSendReport:
			err := c.sendReport(ctx, effect)
			if err != nil {
				logger.Error().Err(err).Msg("send report")
				return fmt.Errorf("send report: %w", err)
			}
		}
	}

	return nil
}

func (c *conversationService) sendReport(ctx context.Context, effect model.Effect) error {
	totals, err := c.stores.Expense.SumByCategory(ctx, SumExpensesFilter{
		UserID: effect.UserID,
		From:   effect.Period.FirstDay(),
		To:     effect.Period.LastDay(),
	})
	if err != nil {
		return fmt.Errorf("sum expenses by category: %w", err)
	}

	_, err = c.apis.Messenger.SendMessage(ctx, SendMessageOptions{
		ChatID: effect.ChatID,
		Text:   formatReport(effect.Period, totals),
	})
	return err
}

// userLocks serializes handling of events that belong to the same user.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*userLock)}
}

func (l *userLocks) lock(userID int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[userID]
	if !ok {
		lock = &userLock{}
		l.locks[userID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
