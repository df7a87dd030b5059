package chat

import "context"

// UseCase is the natural-language engine every adapter talks to.
type UseCase interface {
	// HandleMessage classifies the message, runs the matching task store
	// operations and renders the outcome. It never returns an error: every
	// failure is reported through ChatResult.
	HandleMessage(ctx context.Context, input HandleMessageInput) ChatResult
}
