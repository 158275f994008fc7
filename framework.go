package bookchat

// Framework identifies the generator that produced a site page.
type Framework string

// Recognised frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
)

// FrameworkDetector identifies the site framework from page HTML.
type FrameworkDetector interface {
	// Detect returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}
