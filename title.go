package bookchat

import "strings"

// TrimTitleSuffix removes the " | Site Name" suffix that Docusaurus and
// most static generators append to document titles.
func TrimTitleSuffix(title string) string {
	title = strings.TrimSpace(title)
	if i := strings.LastIndex(title, " | "); i > 0 {
		return strings.TrimSpace(title[:i])
	}
	return title
}
