package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"todo-chat/internal/chat/repository"
	"todo-chat/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type storeCall struct {
	Method     string
	Credential string
	ID         string
	Text       string
	Complete   bool
}

// mockStore is an in-memory TaskStore that records every call. Per-method
// errors short-circuit the call. Safe for concurrent use.
type mockStore struct {
	mu    sync.Mutex
	tasks []model.Task
	calls []storeCall

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	// createText, when set, replaces the stored text to mimic normalization.
	createText func(string) string
}

func (m *mockStore) ListTasks(ctx context.Context, credential string) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, storeCall{Method: "list", Credential: credential})
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockStore) GetTask(ctx context.Context, credential, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, storeCall{Method: "get", Credential: credential, ID: id})
	if m.getErr != nil {
		return model.Task{}, m.getErr
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, &repository.RemoteError{StatusCode: 404, Body: `{"error":"not found"}`}
}

func (m *mockStore) CreateTask(ctx context.Context, credential string, opt repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, storeCall{Method: "create", Credential: credential, Text: opt.Text})
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	text := opt.Text
	if m.createText != nil {
		text = m.createText(text)
	}
	t := model.Task{ID: fmt.Sprint(len(m.tasks) + 1), Text: text}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockStore) UpdateTask(ctx context.Context, credential, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, storeCall{Method: "update", Credential: credential, ID: id, Complete: opt.Complete})
	if m.updateErr != nil {
		return model.Task{}, m.updateErr
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Complete = opt.Complete
			return m.tasks[i], nil
		}
	}
	return model.Task{ID: id, Complete: opt.Complete}, nil
}

func (m *mockStore) DeleteTask(ctx context.Context, credential, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, storeCall{Method: "delete", Credential: credential, ID: id})
	return m.deleteErr
}

// mutations returns the recorded calls that change remote state.
func (m *mockStore) mutations() []storeCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []storeCall
	for _, c := range m.calls {
		switch c.Method {
		case "create", "update", "delete":
			out = append(out, c)
		}
	}
	return out
}
