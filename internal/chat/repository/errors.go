package repository

import "fmt"

// RemoteError is returned when the task store answers with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("task store API error %d: %s", e.StatusCode, e.Body)
}
