package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/expense_bot/config"
	"github.com/VladPetriv/expense_bot/internal/api/health"
	"github.com/VladPetriv/expense_bot/internal/api/telegram"
	"github.com/VladPetriv/expense_bot/internal/migrations"
	"github.com/VladPetriv/expense_bot/internal/service"
	"github.com/VladPetriv/expense_bot/internal/store"
	"github.com/VladPetriv/expense_bot/pkg/database"
	"github.com/VladPetriv/expense_bot/pkg/logger"
)

const (
	stateStorageMemory   = "memory"
	stateStorageDatabase = "database"
)

// Run is used to start the application, it blocks until SIGINT or SIGTERM is received.
func Run(cfg *config.Config, logger *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	err = db.Ping(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	err = migrations.MigrateDB(logger, db.DB, cfg.Database.Database, migrations.Migrations)
	if err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	stateStore, err := newStateStore(cfg.State, db)
	if err != nil {
		logger.Fatal().Err(err).Msg("create state store")
	}

	stores := service.Stores{
		User:     store.NewUser(db),
		Category: store.NewCategory(db),
		Expense:  store.NewExpense(db),
		State:    stateStore,
	}

	messenger, err := telegram.New(telegram.Options{
		Token: cfg.Telegram.BotToken,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create telegram messenger")
	}

	apis := service.APIs{
		Messenger: messenger,
	}

	conversationService := service.NewConversation(&service.ConversationOptions{
		Logger: logger,
		Stores: stores,
		APIs:   apis,
	})

	services := service.Services{
		Conversation: conversationService,
		Event: service.NewEvent(&service.EventOptions{
			Logger:              logger,
			APIs:                apis,
			Stores:              stores,
			ConversationService: conversationService,
			PollInterval:        cfg.Poller.Interval,
			BatchSize:           cfg.Poller.BatchSize,
		}),
	}

	if cfg.HTTP.Address != "" {
		server := health.New(health.Options{
			Logger:   logger,
			Address:  cfg.HTTP.Address,
			Database: db,
			Cursor:   services.Event,
		})

		go func() {
			err := server.Start()
			if err != nil {
				logger.Error().Err(err).Msg("health server stopped")
			}
		}()
		defer func() {
			err := server.Shutdown()
			if err != nil {
				logger.Error().Err(err).Msg("shutdown health server")
			}
		}()
	}

	logger.Info().
		Str("dbDriver", string(db.Driver)).
		Str("stateStorage", cfg.State.Storage).
		Msg("expense bot started")

	err = services.Event.Listen(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("listen for updates")
		return
	}

	logger.Info().Msg("expense bot stopped")
}

func openDatabase(cfg config.Database) (*database.SQL, error) {
	switch database.Driver(cfg.Driver) {
	case database.DriverPostgres:
		return database.NewPostgreSQL(database.PostgreSQLOptions{
			URL:      cfg.URL,
			User:     cfg.User,
			Password: cfg.Password,
			Database: cfg.Database,
			Host:     cfg.Host,
			Port:     cfg.Port,
			SSLMode:  cfg.SSLMode,
		})
	case database.DriverSQLite:
		return database.NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.Driver)
	}
}

func newStateStore(cfg config.State, db *database.SQL) (service.StateStore, error) {
	switch cfg.Storage {
	case stateStorageMemory:
		return store.NewMemoryState(), nil
	case stateStorageDatabase:
		return store.NewState(db), nil
	default:
		return nil, fmt.Errorf("unknown state storage: %s", cfg.Storage)
	}
}
