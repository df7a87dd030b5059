package chat

import "todo-chat/internal/intent"

// HandleMessageInput is the input for a single chat turn.
type HandleMessageInput struct {
	Message     string // Free-text user message
	AccessToken string // Optional; falls back to the configured default
}

// ChatResult is the rendered outcome of a chat turn.
type ChatResult struct {
	Response string        `json:"response"`
	Intent   intent.Intent `json:"intent"`
	Success  bool          `json:"success"`
}
