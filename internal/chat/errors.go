package chat

import (
	"errors"
	"fmt"
)

// ErrMissingCredential means neither the request nor the config supplied an
// access token.
var ErrMissingCredential = errors.New("no access token configured")

// ValidationError reports a required parameter that is missing after an
// intent matched. Prompt is the text shown to the user.
type ValidationError struct {
	Prompt string
}

func (e *ValidationError) Error() string {
	return e.Prompt
}

// ResolutionError reports a task name that matched no task.
type ResolutionError struct {
	Identifier string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("Task '%s' not found.", e.Identifier)
}
