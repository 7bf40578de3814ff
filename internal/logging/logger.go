// Package logging configures the application-wide structured logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/pscheid92/confgate/internal/correlation"
)

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(correlation.NewHandler(handler))
	slog.SetDefault(logger)
}

// WithEnv returns a logger with an environment field.
func WithEnv(env string) *slog.Logger {
	return slog.Default().With("env", env)
}

// WithApp returns a logger with environment and application fields.
func WithApp(env, app string) *slog.Logger {
	return slog.Default().With("env", env, "app", app)
}
