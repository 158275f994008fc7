package mock

import "github.com/fwojciec/bookchat"

var _ bookchat.Converter = (*Converter)(nil)

// Converter is a mock implementation of bookchat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
