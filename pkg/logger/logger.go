package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

var (
	logger Logger
	once   sync.Once
)

// Options represents options for logger.
type Options struct {
	// LogLevel is a zerolog level name, debug is used when empty.
	LogLevel string
	// LogFile enables an additional rotated file output.
	LogFile string
	// LogFileMaxSizeMB is a size after which the log file gets rotated.
	LogFileMaxSizeMB int
	PrettyLogOutput  bool
}

// New returns a process wide instance of logger, options are applied only on the first call.
func New(opts Options) *Logger {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}
		if opts.PrettyLogOutput {
			writers[0] = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Stamp}
		}

		if opts.LogFile != "" {
			writers = append(writers, &lumberjack.Logger{
				Filename: opts.LogFile,
				MaxSize:  opts.LogFileMaxSizeMB,
			})
		}

		level := zerolog.DebugLevel
		if opts.LogLevel != "" {
			parsed, err := zerolog.ParseLevel(opts.LogLevel)
			if err != nil {
				panic(err)
			}
			level = parsed
		}
		zerolog.SetGlobalLevel(level)

		zeroLogger := zerolog.New(io.MultiWriter(writers...)).With().Caller().Timestamp().Logger()

		logger = Logger{&zeroLogger}
	})

	return &logger
}

// Nop returns a logger that discards everything, it is meant for tests and tooling.
func Nop() *Logger {
	zeroLogger := zerolog.Nop()
	return &Logger{&zeroLogger}
}
