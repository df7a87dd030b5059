package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo-chat/internal/chat"
	"todo-chat/internal/chat/repository"
	"todo-chat/internal/intent"
	"todo-chat/internal/model"
)

var errUnknownIntent = errors.New("unknown intent")

// dispatch executes the task store calls for one intent and returns the
// success text. Failures come back as errors for HandleMessage to render.
func (uc *implUseCase) dispatch(ctx context.Context, in intent.Intent, params intent.Params, credential string) (string, error) {
	switch in {
	case intent.IntentAddTask:
		return uc.addTask(ctx, params, credential)
	case intent.IntentListTasks:
		return uc.listTasks(ctx, credential)
	case intent.IntentListIncomplete:
		return uc.listFiltered(ctx, credential, false)
	case intent.IntentListComplete:
		return uc.listFiltered(ctx, credential, true)
	case intent.IntentViewTask:
		return uc.viewTask(ctx, params, credential)
	case intent.IntentCompleteTask:
		return uc.completeTask(ctx, params, credential)
	case intent.IntentDeleteTask:
		return uc.deleteTask(ctx, params, credential)
	default:
		return "", errUnknownIntent
	}
}

func (uc *implUseCase) addTask(ctx context.Context, params intent.Params, credential string) (string, error) {
	text, _ := params.First()
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &chat.ValidationError{Prompt: PromptTaskName}
	}

	created, err := uc.store.CreateTask(ctx, credential, repository.CreateTaskOptions{Text: text})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgTaskCreated, created.Text), nil
}

func (uc *implUseCase) listTasks(ctx context.Context, credential string) (string, error) {
	tasks, err := uc.store.ListTasks(ctx, credential)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return MsgNoTasks, nil
	}
	return fmt.Sprintf(MsgTaskCount, len(tasks), renderMarkedList(tasks)), nil
}

// listFiltered lists the tasks whose completion flag equals complete.
func (uc *implUseCase) listFiltered(ctx context.Context, credential string, complete bool) (string, error) {
	tasks, err := uc.store.ListTasks(ctx, credential)
	if err != nil {
		return "", err
	}

	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Complete == complete {
			filtered = append(filtered, t)
		}
	}

	if complete {
		if len(filtered) == 0 {
			return MsgNoCompletedTasks, nil
		}
		return fmt.Sprintf(MsgCompletedTaskCount, len(filtered), renderPlainList(filtered)), nil
	}
	if len(filtered) == 0 {
		return MsgNoIncompleteTasks, nil
	}
	return fmt.Sprintf(MsgIncompleteTaskCount, len(filtered), renderPlainList(filtered)), nil
}

func (uc *implUseCase) viewTask(ctx context.Context, params intent.Params, credential string) (string, error) {
	id, _ := params.First()
	if id == "" {
		return "", &chat.ValidationError{Prompt: PromptTaskNumber}
	}

	t, err := uc.store.GetTask(ctx, credential, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgTaskDetail, id, t.Text, statusLabel(t.Complete)), nil
}

func (uc *implUseCase) completeTask(ctx context.Context, params intent.Params, credential string) (string, error) {
	identifier, _ := params.First()
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", &chat.ValidationError{Prompt: PromptCompleteWhich}
	}

	id, err := uc.resolveTaskID(ctx, credential, identifier)
	if err != nil {
		return "", err
	}

	if _, err := uc.store.UpdateTask(ctx, credential, id, repository.UpdateTaskOptions{Complete: true}); err != nil {
		return "", err
	}
	return MsgTaskCompleted, nil
}

func (uc *implUseCase) deleteTask(ctx context.Context, params intent.Params, credential string) (string, error) {
	identifier, _ := params.First()
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", &chat.ValidationError{Prompt: PromptDeleteWhich}
	}

	id, err := uc.resolveTaskID(ctx, credential, identifier)
	if err != nil {
		return "", err
	}

	if err := uc.store.DeleteTask(ctx, credential, id); err != nil {
		return "", err
	}
	return MsgTaskDeleted, nil
}
