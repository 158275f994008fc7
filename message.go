package bookchat

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Fixed bot texts.
const (
	GreetingText = "Hi there! 👋\n" +
		"I'm your Physical AI Assistant. I can help you find exact information from the book.\n" +
		"You can ask me a question, or jump directly to a chapter below:"
	ResultsIntroText      = "Here is the exact content I found for you:"
	NoResultsText         = "I couldn't find any relevant sections in the book matching your query."
	ConnectionTroubleText = "Sorry, I'm having trouble connecting to the book brain right now. Please check if the backend is running."
	LoadingText           = "Thinking..."
)

// Message is a single entry in a conversation.
// A message with Results is a result block; Text is its intro line.
type Message struct {
	ID      string         `json:"id"`
	Role    Role           `json:"role"`
	Text    string         `json:"text"`
	Results []SearchResult `json:"results,omitempty"`
}

// IsResultBlock reports whether the message lists search results.
func (m Message) IsResultBlock() bool {
	return len(m.Results) > 0
}
