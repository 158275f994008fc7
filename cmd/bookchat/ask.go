package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bookchat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(deps.Stderr, "error: question is empty")
		return bookchat.Errorf(bookchat.EINVALID, "question is empty")
	}

	before := len(deps.Widget.Messages())
	deps.Widget.Submit(deps.Ctx, query)

	for _, msg := range deps.Widget.Messages()[before:] {
		if msg.Role == bookchat.RoleBot {
			fmt.Fprintln(deps.Stdout, bookchat.FormatMessage(msg))
		}
	}
	return nil
}
