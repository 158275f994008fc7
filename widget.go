package bookchat

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Snapshot is a copy of the widget state handed to observers.
type Snapshot struct {
	Open            bool
	Messages        []Message
	Input           string
	Loading         bool
	ShowSuggestions bool
}

// Widget is a chat session over the book. It owns an append-only message
// list seeded with a greeting, the current input text, and a loading flag.
//
// Submits are not serialized: each runs its own search and appends its
// response when the search completes, in completion order. Widget is safe
// for concurrent use.
type Widget struct {
	searcher    Searcher
	navigator   Navigator
	logger      *slog.Logger
	suggestions []Suggestion
	greeting    string
	latestOnly  bool

	mu        sync.Mutex
	open      bool
	messages  []Message
	input     string
	inflight  int
	token     string
	observers []func(Snapshot)
}

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

// WithLogger sets the logger that receives swallowed search failures.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) WidgetOption {
	return func(w *Widget) {
		w.logger = logger
	}
}

// WithSuggestions replaces the default chapter shortcuts.
func WithSuggestions(suggestions []Suggestion) WidgetOption {
	return func(w *Widget) {
		w.suggestions = suggestions
	}
}

// WithGreeting replaces the seeded greeting text.
func WithGreeting(text string) WidgetOption {
	return func(w *Widget) {
		w.greeting = text
	}
}

// WithLatestOnly applies only the response to the most recent submit.
// Responses to superseded submits are dropped.
func WithLatestOnly() WidgetOption {
	return func(w *Widget) {
		w.latestOnly = true
	}
}

// NewWidget returns a closed widget whose message list holds only the greeting.
func NewWidget(searcher Searcher, navigator Navigator, opts ...WidgetOption) *Widget {
	w := &Widget{
		searcher:    searcher,
		navigator:   navigator,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		suggestions: DefaultSuggestions(),
		greeting:    GreetingText,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.messages = []Message{newMessage(RoleBot, w.greeting, nil)}
	return w
}

// OnChange registers fn to receive a snapshot after every state change.
// fn is called with the widget lock released, from the goroutine that made
// the change.
func (w *Widget) OnChange(fn func(Snapshot)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
}

// Open shows the widget.
func (w *Widget) Open() {
	w.update(func() { w.open = true })
}

// Close hides the widget. The conversation is kept.
func (w *Widget) Close() {
	w.update(func() { w.open = false })
}

// Toggle flips the open flag.
func (w *Widget) Toggle() {
	w.update(func() { w.open = !w.open })
}

// SetInput replaces the current input text.
func (w *Widget) SetInput(text string) {
	w.update(func() { w.input = text })
}

// Send submits the current input text.
func (w *Widget) Send(ctx context.Context) {
	w.Submit(ctx, w.Input())
}

// Submit sends query to the search backend and appends the reply.
//
// A query that is empty after trimming is ignored. Otherwise the user
// message is appended and the input cleared before the search is issued.
// Search failures are logged and answered with ConnectionTroubleText;
// Submit never fails.
func (w *Widget) Submit(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	var token string
	w.update(func() {
		w.messages = append(w.messages, newMessage(RoleUser, query, nil))
		w.input = ""
		w.inflight++
		token = uuid.NewString()
		w.token = token
	})

	reply := w.search(ctx, query)

	w.update(func() {
		w.inflight--
		if w.latestOnly && token != w.token {
			w.logger.Debug("dropping superseded response", "query", query)
			return
		}
		w.messages = append(w.messages, reply)
	})
}

// search issues the request and turns its outcome into a bot message.
func (w *Widget) search(ctx context.Context, query string) Message {
	resp, err := w.searcher.Search(ctx, SearchRequest{Query: query, Limit: DefaultSearchLimit})
	if err != nil {
		w.logger.Error("search failed", "query", query, "err", err)
		return newMessage(RoleBot, ConnectionTroubleText, nil)
	}
	if resp == nil || len(resp.Results) == 0 {
		return newMessage(RoleBot, NoResultsText, nil)
	}
	return newMessage(RoleBot, ResultsIntroText, resp.Results)
}

// Navigate jumps to the page of one of the widget's suggestions.
// It issues no search and leaves the conversation untouched.
// Returns EINVALID if path is not a suggestion path.
func (w *Widget) Navigate(ctx context.Context, path string) error {
	if _, ok := FindSuggestion(w.suggestions, path); !ok {
		return Errorf(EINVALID, "%q is not a suggested page", path)
	}
	return w.navigator.Navigate(ctx, path)
}

// Suggestions returns the chapter shortcuts.
func (w *Widget) Suggestions() []Suggestion {
	out := make([]Suggestion, len(w.suggestions))
	copy(out, w.suggestions)
	return out
}

// Messages returns a copy of the conversation.
func (w *Widget) Messages() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copyMessages()
}

// Input returns the current input text.
func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// Loading reports whether any submit is awaiting its response.
func (w *Widget) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inflight > 0
}

// IsOpen reports whether the widget is shown.
func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// ShowSuggestions reports whether the suggestion grid is displayed.
// Only the greeting may be present; once anything is submitted the grid
// stays hidden.
func (w *Widget) ShowSuggestions() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.messages) == 1
}

// Snapshot returns a copy of the current state.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// update applies fn under the lock and notifies observers.
func (w *Widget) update(fn func()) {
	w.mu.Lock()
	fn()
	snap := w.snapshot()
	observers := make([]func(Snapshot), len(w.observers))
	copy(observers, w.observers)
	w.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}

func (w *Widget) snapshot() Snapshot {
	return Snapshot{
		Open:            w.open,
		Messages:        w.copyMessages(),
		Input:           w.input,
		Loading:         w.inflight > 0,
		ShowSuggestions: len(w.messages) == 1,
	}
}

func (w *Widget) copyMessages() []Message {
	out := make([]Message, len(w.messages))
	copy(out, w.messages)
	return out
}

func newMessage(role Role, text string, results []SearchResult) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Text:    text,
		Results: results,
	}
}
