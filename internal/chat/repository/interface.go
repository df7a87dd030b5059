package repository

import (
	"context"

	"todo-chat/internal/model"
)

// TaskStore is the remote to-do list. Every call carries the access
// credential it should authenticate with.
type TaskStore interface {
	ListTasks(ctx context.Context, credential string) ([]model.Task, error)
	GetTask(ctx context.Context, credential, id string) (model.Task, error)
	CreateTask(ctx context.Context, credential string, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, credential, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, credential, id string) error
}
