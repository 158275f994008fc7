package bookchat

// Converter turns extracted article HTML into Markdown for terminal display.
type Converter interface {
	Convert(html string) (string, error)
}
