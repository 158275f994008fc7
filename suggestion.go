package bookchat

// Suggestion is a static shortcut to a known documentation page.
// Selecting one navigates directly and bypasses search.
type Suggestion struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// DefaultSuggestions returns the chapter shortcuts offered by the widget.
func DefaultSuggestions() []Suggestion {
	return []Suggestion{
		{Label: "Introduction", Path: "/docs/intro"},
		{Label: "Humanoid Basics", Path: "/docs/humanoid-basics"},
		{Label: "Physical Systems", Path: "/docs/physical-systems"},
		{Label: "Programming Core", Path: "/docs/programming-core"},
		{Label: "AI Integration", Path: "/docs/robot-ai-integration"},
		{Label: "Movement Dynamics", Path: "/docs/movement-dynamics"},
	}
}

// FindSuggestion returns the suggestion with the given path.
func FindSuggestion(suggestions []Suggestion, path string) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.Path == path {
			return s, true
		}
	}
	return Suggestion{}, false
}
