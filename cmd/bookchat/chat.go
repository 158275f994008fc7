package main

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/bookchat"
)

// Run executes the chat command.
//
// Each line read from stdin is submitted in its own goroutine, so a slow
// answer never blocks the next question. Replies are printed as they
// arrive. Lines starting with a slash are chat commands.
func (c *ChatCmd) Run(deps *Dependencies) error {
	w := deps.Widget
	p := &chatPrinter{
		out:         deps.Stdout,
		suggestions: w.Suggestions(),
		printed:     make(map[string]bool),
	}
	w.OnChange(p.render)
	w.Open()
	defer w.Close()

	var wg sync.WaitGroup
	defer wg.Wait()

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")

		switch command {
		case "/quit", "/exit":
			return nil
		case "/suggestions":
			p.println(bookchat.FormatSuggestions(w.Suggestions()))
		case "/open":
			path, err := resolveTarget(w.Suggestions(), arg)
			if err == nil {
				err = w.Navigate(deps.Ctx, path)
			}
			if err != nil {
				p.println("error: " + errorText(err))
			}
		default:
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.Submit(deps.Ctx, line)
			}()
		}
	}
	return scanner.Err()
}

// chatPrinter writes each message once, in conversation order. Each
// render is a single Write to out, so it never splits around a page
// written by the navigator to the same writer.
type chatPrinter struct {
	mu          sync.Mutex
	out         io.Writer
	suggestions []bookchat.Suggestion
	printed     map[string]bool
}

func (p *chatPrinter) render(snap bookchat.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	for _, msg := range snap.Messages {
		if p.printed[msg.ID] {
			continue
		}
		p.printed[msg.ID] = true

		switch msg.Role {
		case bookchat.RoleUser:
			if snap.Loading {
				b.WriteString(bookchat.LoadingText + "\n")
			}
		case bookchat.RoleBot:
			b.WriteString(bookchat.FormatMessage(msg) + "\n")
			if snap.ShowSuggestions {
				b.WriteString(bookchat.FormatSuggestions(p.suggestions) + "\n")
			}
		}
	}
	if b.Len() > 0 {
		_, _ = io.WriteString(p.out, b.String())
	}
}

func (p *chatPrinter) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, s+"\n")
}
