package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookchat"
	"github.com/fwojciec/bookchat/goquery"
	"github.com/fwojciec/bookchat/htmltomarkdown"
	bchttp "github.com/fwojciec/bookchat/http"
	"github.com/fwojciec/bookchat/readability"
	"github.com/fwojciec/bookchat/rod"
	"github.com/fwojciec/bookchat/site"
	bcslog "github.com/fwojciec/bookchat/slog"
	"github.com/fwojciec/bookchat/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the chat command. Set before calling Run().
	Stdin io.Reader

	// Browser-backed fetcher, started only when --browser is set.
	Browser *rod.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Browser != nil {
		return m.Browser.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Chat replies and page transitions write concurrently; both go
	// through one writer lock.
	stdout = &syncWriter{w: stdout}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookchat"),
		kong.Description("Search the Physical AI book from the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookchat --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := parseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	searchURL := cli.SearchURL
	if searchURL == "" {
		searchURL, err = bchttp.SearchURL(cli.Site)
		if err != nil {
			return err
		}
	}
	searcher := bcslog.NewLoggingSearcher(
		bchttp.NewSearcher(searchURL, bchttp.WithSearchTimeout(cli.Timeout)),
		logger,
	)

	fetcher := bcslog.NewLoggingFetcher(bchttp.NewFetcher(bchttp.WithTimeout(cli.FetchTimeout)), logger)

	cmd := strings.Fields(kongCtx.Command())[0]

	loader := &site.Loader{
		BaseURL:   cli.Site,
		Fetcher:   fetcher,
		Detector:  bcslog.NewLoggingDetector(goquery.NewDetector(), logger),
		Extractor: goquery.NewExtractor(),
		Fallback:  newFallbackExtractor(cli.Extractor),
		Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.Site)),
		Logger:    logger,
	}

	if cli.Browser && (cmd == "chat" || cmd == "open") {
		m.Browser, err = rod.NewFetcher(rod.WithFetchTimeout(cli.FetchTimeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer m.Close()
		loader.Browser = bcslog.NewLoggingFetcher(m.Browser, logger)
	}

	navigator := bcslog.NewLoggingNavigator(&site.Navigator{Pages: loader, Out: stdout}, logger)

	opts := []bookchat.WidgetOption{bookchat.WithLogger(logger)}
	if cli.LatestOnly {
		opts = append(opts, bookchat.WithLatestOnly())
	}
	deps.Widget = bookchat.NewWidget(searcher, navigator, opts...)

	if cmd == "check" {
		deps.Checker = &site.Checker{
			BaseURL:     cli.Site,
			SearchURL:   searchURL,
			Backend:     searcher,
			Sitemaps:    bcslog.NewLoggingSitemapService(bchttp.NewSitemapService(nil), logger),
			Fetcher:     fetcher,
			Limiter:     site.NewDomainLimiter(cli.Check.RateLimit),
			Concurrency: cli.Check.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

func newFallbackExtractor(name string) bookchat.Extractor {
	if name == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, bookchat.Errorf(bookchat.EINVALID, "invalid log level %q", s)
	}
	return level, nil
}

// syncWriter serializes writes to w. Each Write lands whole.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// errorText returns the message of an application error, or the full
// error text for anything else.
func errorText(err error) string {
	if bookchat.ErrorCode(err) == bookchat.EINTERNAL {
		return err.Error()
	}
	return bookchat.ErrorMessage(err)
}
