package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents an app config.
type Config struct {
	Telegram Telegram
	Database Database
	Poller   Poller
	State    State
	HTTP     HTTP
	Logger   Logger
}

// Telegram represents a telegram bot configuration.
type Telegram struct {
	BotToken string `env:"BOT_TOKEN" env-required:"true"`
}

// Database represents a SQL database configuration.
type Database struct {
	// Driver is either postgres or sqlite.
	Driver string `env:"DB_DRIVER" env-default:"postgres"`

	URL      string `env:"PG_URL"`
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `env:"POSTGRES_DATABASE" env-default:"expenses"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`

	SQLitePath string `env:"SQLITE_PATH" env-default:"expenses.db"`
}

// Poller represents a configuration of telegram updates polling.
type Poller struct {
	Interval  time.Duration `env:"POLL_INTERVAL" env-default:"200ms"`
	BatchSize int           `env:"POLL_BATCH_SIZE" env-default:"1"`
}

// State represents a conversation states storage configuration.
type State struct {
	// Storage is either memory or database.
	Storage string `env:"STATE_STORAGE" env-default:"memory"`
}

// HTTP represents a health server configuration, empty address disables the server.
type HTTP struct {
	Address string `env:"HTTP_ADDRESS"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"FB_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"FB_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"FB_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a config read from the environment, values from .env file are loaded first when it exists.
func Get() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("load .env file: %v", err)
		}

		err = cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
