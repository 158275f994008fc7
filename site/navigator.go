package site

import (
	"context"
	"io"

	"github.com/fwojciec/bookchat"
)

var _ bookchat.Navigator = (*Navigator)(nil)

// Navigator performs a page transition in a terminal by loading the page
// and writing it to Out in a single Write. Callers sharing Out with other
// writers serialize through Out itself.
type Navigator struct {
	Pages bookchat.PageLoader
	Out   io.Writer
}

// Navigate loads the page at path and writes it to Out.
func (n *Navigator) Navigate(ctx context.Context, path string) error {
	page, err := n.Pages.LoadPage(ctx, path)
	if err != nil {
		return err
	}

	_, err = io.WriteString(n.Out, bookchat.FormatPage(page)+"\n")
	return err
}
