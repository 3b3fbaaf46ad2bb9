package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/pkg/errs"
	"github.com/VladPetriv/expense_bot/pkg/logger"
	"github.com/go-co-op/gocron"
)

const (
	defaultPollInterval = 200 * time.Millisecond
	defaultBatchSize    = 1
)

type eventService struct {
	logger       *logger.Logger
	apis         APIs
	stores       Stores
	conversation ConversationService

	interval  time.Duration
	batchSize int
	now       func() time.Time

	cursor atomic.Int64
}

var _ EventService = (*eventService)(nil)

// EventOptions represents an input options for creating new instance of event service.
type EventOptions struct {
	Logger              *logger.Logger
	APIs                APIs
	Stores              Stores
	ConversationService ConversationService

	// PollInterval defaults to 200ms.
	PollInterval time.Duration
	// BatchSize defaults to 1.
	BatchSize int
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewEvent returns new instance of event service.
func NewEvent(opts *EventOptions) *eventService {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &eventService{
		logger:       opts.Logger,
		apis:         opts.APIs,
		stores:       opts.Stores,
		conversation: opts.ConversationService,
		interval:     interval,
		batchSize:    batchSize,
		now:          now,
	}
}

// Listen polls updates on a fixed interval. A tick that fires while the previous
// poll is still running is skipped.
func (e *eventService) Listen(ctx context.Context) error {
	logger := e.logger.With().Str("name", "eventService.Listen").Logger()

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SetMaxConcurrentJobs(1, gocron.RescheduleMode)

	_, err := scheduler.Every(e.interval).Do(func() {
		e.Poll(ctx)
	})
	if err != nil {
		logger.Error().Err(err).Msg("schedule updates polling")
		return fmt.Errorf("schedule updates polling: %w", err)
	}

	logger.Info().Dur("interval", e.interval).Int("batchSize", e.batchSize).Msg("started listening for updates")
	scheduler.StartAsync()

	<-ctx.Done()
	scheduler.Stop()

	logger.Info().Int("cursor", e.Cursor()).Msg("stopped listening for updates")
	return nil
}

// Poll fetches one batch of updates and handles them in order. The cursor moves
// past every fetched update whatever the outcome of its handling is.
func (e *eventService) Poll(ctx context.Context) {
	logger := e.logger.With().Str("name", "eventService.Poll").Logger()

	if ctx.Err() != nil {
		return
	}

	updates, err := e.apis.Messenger.GetUpdates(ctx, e.Cursor(), e.batchSize)
	if err != nil {
		logger.Error().Err(err).Msg("get updates")
		return
	}

	for _, update := range updates {
		e.processUpdate(ctx, update)

		next := int64(update.ID) + 1
		if next > e.cursor.Load() {
			e.cursor.Store(next)
		}
	}
}

// Cursor returns the id of the next update to fetch.
func (e *eventService) Cursor() int {
	return int(e.cursor.Load())
}

func (e *eventService) processUpdate(ctx context.Context, update model.Update) {
	logger := e.logger.With().Str("name", "eventService.processUpdate").Int("updateID", update.ID).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Any("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("recovered from panic while processing bot update")
		}
	}()

	if update.Callback != nil {
		defer func() {
			err := e.apis.Messenger.AnswerCallback(ctx, update.Callback.ID)
			if err != nil {
				logger.Warn().Err(err).Msg("answer callback")
			}
		}()
	}

	err := e.HandleUpdate(ctx, update)
	if err != nil {
		if errs.IsExpected(err) {
			logger.Warn().Err(err).Msg("update ignored")
			return
		}

		logger.Error().Err(err).Msg("handle update")
	}
}

// HandleUpdate makes sure the sender is known, converts the update into an event and passes it to the conversation.
func (e *eventService) HandleUpdate(ctx context.Context, update model.Update) error {
	logger := e.logger.With().Str("name", "eventService.HandleUpdate").Logger()
	logger.Debug().Any("update", update).Msg("got args")

	if update.ChatID == 0 || update.UserID == 0 {
		logger.Debug().Msg("update without chat or user, skipping")
		return nil
	}

	err := e.stores.User.CreateIfNotExists(ctx, update.UserID)
	if err != nil {
		logger.Error().Err(err).Msg("ensure user exists")
		return fmt.Errorf("ensure user exists: %w", err)
	}

	event, ok, err := e.eventFromUpdate(update)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = e.conversation.HandleEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("handle %s event: %w", event.Kind, err)
	}

	return nil
}

func (e *eventService) eventFromUpdate(update model.Update) (model.Event, bool, error) {
	logger := e.logger.With().Str("name", "eventService.eventFromUpdate").Logger()

	switch {
	case update.Message != nil:
		if update.Message.Text == "" {
			logger.Warn().Int("messageID", update.Message.ID).Msg("empty message received")
			return model.Event{}, false, nil
		}

		return model.TextEvent(update.ChatID, update.UserID, update.Message.ID, update.Message.Text), true, nil

	case update.Callback != nil:
		if update.Callback.Data == "" || update.Callback.MessageID == 0 {
			logger.Debug().Msg("callback without data or message, skipping")
			return model.Event{}, false, nil
		}

		command, err := model.ParseCommand(update.Callback.Data, e.now())
		if err != nil {
			return model.Event{}, false, fmt.Errorf("parse command: %w", err)
		}

		return model.CallbackEvent(update.ChatID, update.UserID, update.Callback.MessageID, command), true, nil

	default:
		logger.Debug().Msg("unsupported update kind, skipping")
		return model.Event{}, false, nil
	}
}
