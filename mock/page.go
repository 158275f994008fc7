package mock

import (
	"context"

	"github.com/fwojciec/bookchat"
)

// Compile-time interface verification.
var (
	_ bookchat.PageLoader = (*PageLoader)(nil)
	_ bookchat.Navigator  = (*Navigator)(nil)
)

// PageLoader is a mock implementation of bookchat.PageLoader.
type PageLoader struct {
	LoadPageFn func(ctx context.Context, path string) (*bookchat.Page, error)
}

func (l *PageLoader) LoadPage(ctx context.Context, path string) (*bookchat.Page, error) {
	return l.LoadPageFn(ctx, path)
}

// Navigator is a mock implementation of bookchat.Navigator.
type Navigator struct {
	NavigateFn func(ctx context.Context, path string) error
}

func (n *Navigator) Navigate(ctx context.Context, path string) error {
	return n.NavigateFn(ctx, path)
}
