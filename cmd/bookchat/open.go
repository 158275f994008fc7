package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/bookchat"
)

// Run executes the open command.
func (c *OpenCmd) Run(deps *Dependencies) error {
	path, err := resolveTarget(deps.Widget.Suggestions(), c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if err := deps.Widget.Navigate(deps.Ctx, path); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	return nil
}

// resolveTarget maps a 1-based suggestion number or a path to a suggestion path.
func resolveTarget(suggestions []bookchat.Suggestion, target string) (string, error) {
	target = strings.TrimSpace(target)
	if n, err := strconv.Atoi(target); err == nil {
		if n < 1 || n > len(suggestions) {
			return "", bookchat.Errorf(bookchat.EINVALID, "no suggestion %d; choose 1-%d", n, len(suggestions))
		}
		return suggestions[n-1].Path, nil
	}
	if _, ok := bookchat.FindSuggestion(suggestions, target); !ok {
		return "", bookchat.Errorf(bookchat.EINVALID, "%q is not a suggested page. Run 'bookchat suggestions' to list them", target)
	}
	return target, nil
}
