package main

import (
	"fmt"

	"github.com/fwojciec/bookchat"
)

// Run executes the suggestions command.
func (c *SuggestionsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, bookchat.FormatSuggestions(deps.Widget.Suggestions()))
	return nil
}
