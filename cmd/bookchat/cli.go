package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bookchat"
	"github.com/fwojciec/bookchat/site"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Widget  *bookchat.Widget
	Checker *site.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Site         string        `default:"http://localhost:3000" env:"BOOKCHAT_SITE" help:"Base URL of the documentation site"`
	SearchURL    string        `name:"search-url" env:"BOOKCHAT_SEARCH_URL" help:"Search endpoint (default: port 8000 on the site host)"`
	Timeout      time.Duration `env:"BOOKCHAT_TIMEOUT" help:"Search timeout; 0 waits for the backend indefinitely"`
	FetchTimeout time.Duration `name:"fetch-timeout" default:"10s" help:"Page fetch timeout"`
	Browser      bool          `help:"Render pages with headless Chrome when the served HTML has no content"`
	Extractor    string        `enum:"trafilatura,readability" default:"trafilatura" help:"Extractor for non-Docusaurus pages (trafilatura, readability)"`
	LatestOnly   bool          `name:"latest-only" help:"Drop replies to questions superseded by a newer one"`
	LogLevel     string        `name:"log-level" default:"error" env:"BOOKCHAT_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	Chat        ChatCmd        `cmd:"" help:"Start an interactive chat session"`
	Ask         AskCmd         `cmd:"" help:"Ask a single question"`
	Open        OpenCmd        `cmd:"" help:"Open a suggested chapter"`
	Suggestions SuggestionsCmd `cmd:"" help:"List suggested chapters"`
	Check       CheckCmd       `cmd:"" help:"Verify that suggested chapters exist on the site"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query []string `arg:"" help:"Question to search the book for"`
}

// OpenCmd is the "open" subcommand.
type OpenCmd struct {
	Target string `arg:"" help:"Suggestion number or path"`
}

// SuggestionsCmd is the "suggestions" subcommand.
type SuggestionsCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Concurrency int     `short:"c" default:"4" help:"Concurrent check limit"`
	RateLimit   float64 `name:"rate-limit" default:"2" help:"Requests per second to the site"`
}
