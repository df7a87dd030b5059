package repository

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Text string
}

// UpdateTaskOptions holds the fields to change on a task.
type UpdateTaskOptions struct {
	Complete bool
}
