package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level      string
	Format     string // "pretty" or "json"
	WithCaller bool
	Output     io.Writer
	TimeFormat string
}

// DefaultConfig returns sensible defaults for logging
func DefaultConfig() *Config {
	return &Config{
		Level:      "warn",
		Format:     "pretty",
		WithCaller: false,
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// InitLogger creates and configures a new zerolog logger. The logger is
// built once at startup and handed to components; nothing in the program
// initializes logging lazily.
func InitLogger(config *Config) zerolog.Logger {
	if config == nil {
		config = DefaultConfig()
	}

	level := parseLevel(config.Level)
	zerolog.SetGlobalLevel(level)

	var output io.Writer = config.Output
	if config.Format == "pretty" {
		output = &zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	logger := zerolog.New(output).With().
		Timestamp().
		Str("app", "habctl").
		Logger()

	if config.WithCaller {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetupFromFlags configures the logger based on command flags
func SetupFromFlags(verbose bool, debug bool) zerolog.Logger {
	config := DefaultConfig()

	if debug {
		config.Level = "debug"
		config.WithCaller = true
	} else if verbose {
		config.Level = "info"
	}

	return InitLogger(config)
}

// ForComponent creates a logger with component context
func ForComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// ForRequest creates a logger with request context
func ForRequest(logger zerolog.Logger, method, url string) zerolog.Logger {
	return logger.With().
		Str("method", method).
		Str("url", url).
		Logger()
}
