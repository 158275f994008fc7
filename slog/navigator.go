package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookchat"
)

// Ensure LoggingNavigator implements bookchat.Navigator.
var _ bookchat.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with logging.
type LoggingNavigator struct {
	next   bookchat.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next bookchat.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Navigate delegates to the wrapped navigator and logs the transition.
func (n *LoggingNavigator) Navigate(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("navigate",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Navigate(ctx, path)
}
