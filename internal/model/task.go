package model

// Task is a to-do item held by the remote list service. The service assigns
// the ID; the engine never stores a Task beyond a single request.
type Task struct {
	ID       string
	Text     string
	Complete bool
}
