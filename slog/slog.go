// Package slog provides log/slog decorators for the bookchat service
// interfaces. Each decorator logs one line per call with its duration and
// error, then returns the wrapped result unchanged.
package slog
