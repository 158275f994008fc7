package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bookchat"
)

// Ensure LoggingDetector implements bookchat.FrameworkDetector.
var _ bookchat.FrameworkDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a FrameworkDetector with logging.
type LoggingDetector struct {
	next   bookchat.FrameworkDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next bookchat.FrameworkDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the framework found.
func (d *LoggingDetector) Detect(html string) bookchat.Framework {
	begin := time.Now()
	framework := d.next.Detect(html)
	name := string(framework)
	if framework == bookchat.FrameworkUnknown {
		name = "(unknown)"
	}
	d.logger.Info("framework detection",
		"framework", name,
		"duration", time.Since(begin),
	)
	return framework
}
