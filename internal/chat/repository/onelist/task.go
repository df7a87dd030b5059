package onelist

import (
	"context"

	"todo-chat/internal/chat/repository"
	"todo-chat/internal/model"
	pkgLog "todo-chat/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a TaskStore backed by the one-list API.
func New(client *Client, l pkgLog.Logger) repository.TaskStore {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context, credential string) ([]model.Task, error) {
	items, err := r.client.ListItems(ctx, credential)
	if err != nil {
		r.l.Errorf(ctx, "onelist repository: failed to list items: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(items))
	for i := range items {
		tasks = append(tasks, itemToTask(&items[i]))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, credential, id string) (model.Task, error) {
	item, err := r.client.GetItem(ctx, credential, id)
	if err != nil {
		r.l.Errorf(ctx, "onelist repository: failed to get item %s: %v", id, err)
		return model.Task{}, err
	}
	return itemToTask(item), nil
}

func (r *implRepository) CreateTask(ctx context.Context, credential string, opt repository.CreateTaskOptions) (model.Task, error) {
	item, err := r.client.CreateItem(ctx, credential, CreateItemRequest{Text: opt.Text})
	if err != nil {
		r.l.Errorf(ctx, "onelist repository: failed to create item: %v", err)
		return model.Task{}, err
	}
	return itemToTask(item), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, credential, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	item, err := r.client.UpdateItem(ctx, credential, id, UpdateItemRequest{Complete: opt.Complete})
	if err != nil {
		r.l.Errorf(ctx, "onelist repository: failed to update item %s: %v", id, err)
		return model.Task{}, err
	}
	return itemToTask(item), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, credential, id string) error {
	if err := r.client.DeleteItem(ctx, credential, id); err != nil {
		r.l.Errorf(ctx, "onelist repository: failed to delete item %s: %v", id, err)
		return err
	}
	return nil
}

// itemToTask converts a one-list Item into the internal model.Task.
func itemToTask(it *Item) model.Task {
	return model.Task{
		ID:       it.ID.String(),
		Text:     it.Text,
		Complete: it.Complete,
	}
}
