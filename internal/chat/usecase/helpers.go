package usecase

import (
	"context"
	"fmt"
	"strings"

	"todo-chat/internal/chat"
	"todo-chat/internal/model"
)

// resolveTaskID maps a user supplied identifier to a task ID. All-digit
// identifiers are taken as IDs as-is; anything else is matched as a
// case-insensitive substring of the task text, first match in store order.
func (uc *implUseCase) resolveTaskID(ctx context.Context, credential, identifier string) (string, error) {
	if isDigits(identifier) {
		return identifier, nil
	}

	tasks, err := uc.store.ListTasks(ctx, credential)
	if err != nil {
		return "", err
	}

	t, ok := findTaskByName(tasks, identifier)
	if !ok {
		return "", &chat.ResolutionError{Identifier: identifier}
	}
	return t.ID, nil
}

func findTaskByName(tasks []model.Task, name string) (model.Task, bool) {
	name = strings.Trim(strings.TrimSpace(strings.ToLower(name)), `"'`)
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Text), name) {
			return t, true
		}
	}
	return model.Task{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// renderMarkedList renders tasks as a 1-indexed list with a completion mark.
func renderMarkedList(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		mark := MarkIncomplete
		if t.Complete {
			mark = MarkCompleted
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, mark, t.Text))
	}
	return strings.Join(lines, "\n")
}

// renderPlainList renders tasks as a 1-indexed list of their text.
func renderPlainList(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, t.Text))
	}
	return strings.Join(lines, "\n")
}

func statusLabel(complete bool) string {
	if complete {
		return StatusCompleted
	}
	return StatusIncomplete
}
