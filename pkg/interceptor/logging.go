package interceptor

import (
	"context"
	"log/slog"
	"time"

	"github.com/wayfare-dev/wayfare/pkg/nav"
)

// LoggingConfig configures the logging queue.
type LoggingConfig struct {
	// Logger is the structured logger to write to (default: slog.Default()).
	Logger *slog.Logger

	// Level is the level successful navigations are logged at
	// (default: slog.LevelInfo). Failures always log at Error.
	Level slog.Level
}

// LoggingOption configures the logging queue.
type LoggingOption func(*LoggingConfig)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) LoggingOption {
	return func(c *LoggingConfig) {
		c.Logger = log
	}
}

// WithLevel sets the success log level.
func WithLevel(level slog.Level) LoggingOption {
	return func(c *LoggingConfig) {
		c.Level = level
	}
}

// Logging creates a queue that logs every navigation passing through it
// with its target path, outcome, and duration.
func Logging(opts ...LoggingOption) nav.Queue {
	config := LoggingConfig{Level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&config)
	}

	return nav.QueueFunc(func(ctx context.Context, prev, next *nav.State, remaining nav.Remaining) (*nav.State, error) {
		log := config.Logger
		if log == nil {
			log = slog.Default()
		}

		start := time.Now()
		state, err := remaining.Handle(ctx, next)
		elapsed := time.Since(start)

		if err != nil {
			log.ErrorContext(ctx, "navigation failed",
				"path", next.Path,
				"matched", next.Matched(),
				"duration", elapsed,
				"error", err,
			)
			return nil, err
		}

		log.LogAttrs(ctx, config.Level, "navigation",
			slog.String("path", state.Path),
			slog.Duration("duration", elapsed),
		)
		return state, nil
	})
}
