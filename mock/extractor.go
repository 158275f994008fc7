package mock

import "github.com/fwojciec/bookchat"

// Compile-time interface verification.
var (
	_ bookchat.Extractor         = (*Extractor)(nil)
	_ bookchat.FrameworkDetector = (*FrameworkDetector)(nil)
)

// Extractor is a mock implementation of bookchat.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*bookchat.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*bookchat.ExtractResult, error) {
	return e.ExtractFn(html)
}

// FrameworkDetector is a mock implementation of bookchat.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) bookchat.Framework
}

func (d *FrameworkDetector) Detect(html string) bookchat.Framework {
	return d.DetectFn(html)
}
