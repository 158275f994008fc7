package main

import (
	"fmt"

	"github.com/fwojciec/bookchat"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	suggestions := deps.Widget.Suggestions()

	backend := deps.Checker.CheckBackend(deps.Ctx)
	if backend.OK() {
		status := backend.Health.Status
		if status == "" {
			status = "up"
		}
		fmt.Fprintf(deps.Stdout, "OK    search backend %s (%s)\n", backend.URL, status)
	} else {
		fmt.Fprintf(deps.Stdout, "FAIL  search backend %s: %s\n", backend.URL, errorText(backend.Err))
	}

	checks, err := deps.Checker.Check(deps.Ctx, suggestions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	var failed int
	for _, check := range checks {
		if check.OK() {
			fmt.Fprintf(deps.Stdout, "OK    %s (%s)\n", check.Suggestion.Path, check.Source)
			continue
		}
		failed++
		fmt.Fprintf(deps.Stdout, "FAIL  %s: %s\n", check.Suggestion.Path, errorText(check.Err))
	}

	if failed > 0 {
		return bookchat.Errorf(bookchat.ENOTFOUND, "%d of %d suggested pages unreachable", failed, len(checks))
	}
	if !backend.OK() {
		return bookchat.Errorf(bookchat.EUNAVAILABLE, "search backend unreachable. Is the backend running?")
	}
	return nil
}
