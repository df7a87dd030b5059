package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"todo-chat/internal/chat"
	"todo-chat/internal/chat/repository"
	"todo-chat/internal/chat/usecase"
	"todo-chat/internal/intent"
	"todo-chat/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubClassifier returns a fixed classification, for driving dispatch with
// parameters the regex table cannot produce.
type stubClassifier struct {
	in     intent.Intent
	params intent.Params
}

func (s stubClassifier) Classify(string) (intent.Intent, intent.Params) {
	return s.in, s.params
}

func newUseCase(store *mockStore) chat.UseCase {
	return usecase.New(&mockLogger{}, intent.NewDefault(), store, usecase.Config{DefaultAccessToken: "default-token"})
}

func handle(uc chat.UseCase, message string) chat.ChatResult {
	return uc.HandleMessage(context.Background(), chat.HandleMessageInput{Message: message})
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Text: "Buy milk", Complete: false},
		{ID: "2", Text: "Buy milk extra", Complete: true},
		{ID: "3", Text: "Walk dog", Complete: false},
	}
}

func TestHandleMessageAddTask(t *testing.T) {
	store := &mockStore{createText: func(s string) string { return s + " (saved)" }}
	uc := newUseCase(store)

	res := handle(uc, "Add a task to buy milk")

	require.True(t, res.Success)
	assert.Equal(t, intent.IntentAddTask, res.Intent)
	assert.Equal(t, `✓ Task created: "buy milk (saved)"`, res.Response)
	require.Len(t, store.mutations(), 1)
	assert.Equal(t, storeCall{Method: "create", Credential: "default-token", Text: "buy milk"}, store.calls[0])
}

func TestHandleMessageValidation(t *testing.T) {
	tests := []struct {
		name   string
		in     intent.Intent
		params intent.Params
		want   string
	}{
		{name: "add absent", in: intent.IntentAddTask, want: usecase.PromptTaskName},
		{name: "add blank", in: intent.IntentAddTask, params: intent.Params{"   "}, want: usecase.PromptTaskName},
		{name: "view absent", in: intent.IntentViewTask, want: usecase.PromptTaskNumber},
		{name: "complete blank", in: intent.IntentCompleteTask, params: intent.Params{" "}, want: usecase.PromptCompleteWhich},
		{name: "delete absent", in: intent.IntentDeleteTask, want: usecase.PromptDeleteWhich},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{tasks: sampleTasks()}
			uc := usecase.New(&mockLogger{}, stubClassifier{in: tt.in, params: tt.params}, store, usecase.Config{DefaultAccessToken: "tok"})

			res := handle(uc, "ignored")

			assert.False(t, res.Success)
			assert.Equal(t, tt.in, res.Intent)
			assert.Equal(t, tt.want, res.Response)
			assert.Empty(t, store.calls, "validation failures must not reach the store")
		})
	}
}

func TestHandleMessageListing(t *testing.T) {
	store := &mockStore{tasks: []model.Task{
		{ID: "1", Text: "Buy milk", Complete: false},
		{ID: "2", Text: "Walk dog", Complete: true},
	}}
	uc := newUseCase(store)

	res := handle(uc, "show all tasks")
	require.True(t, res.Success)
	assert.Equal(t, intent.IntentListTasks, res.Intent)
	assert.Equal(t, "You have 2 task(s):\n\n1. ○ Buy milk\n2. ✓ Walk dog", res.Response)

	res = handle(uc, "show me pending tasks")
	require.True(t, res.Success)
	assert.Equal(t, intent.IntentListIncomplete, res.Intent)
	assert.Equal(t, "You have 1 incomplete task(s):\n\n1. Buy milk", res.Response)

	res = handle(uc, "show completed tasks")
	require.True(t, res.Success)
	assert.Equal(t, intent.IntentListComplete, res.Intent)
	assert.Equal(t, "You have 1 completed task(s):\n\n1. Walk dog", res.Response)

	assert.Empty(t, store.mutations())
}

func TestHandleMessageEmptyStore(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{message: "show all tasks", want: usecase.MsgNoTasks},
		{message: "show me pending tasks", want: usecase.MsgNoIncompleteTasks},
		{message: "show completed tasks", want: usecase.MsgNoCompletedTasks},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			res := handle(newUseCase(&mockStore{}), tt.message)
			assert.True(t, res.Success, "empty results are not failures")
			assert.Equal(t, tt.want, res.Response)
		})
	}
}

func TestHandleMessageFilteredEmpty(t *testing.T) {
	uc := newUseCase(&mockStore{tasks: []model.Task{{ID: "1", Text: "Done thing", Complete: true}}})

	res := handle(uc, "pending tasks")

	assert.True(t, res.Success)
	assert.Equal(t, usecase.MsgNoIncompleteTasks, res.Response)
}

func TestHandleMessageViewTask(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}
	uc := newUseCase(store)

	res := handle(uc, "task number 2")
	require.True(t, res.Success)
	assert.Equal(t, intent.IntentViewTask, res.Intent)
	assert.Equal(t, "Task #2:\n\nName: Buy milk extra\nStatus: ✓ Completed", res.Response)

	res = handle(uc, "task 42")
	assert.False(t, res.Success)
	assert.Equal(t, `API Error: 404 - {"error":"not found"}`, res.Response)
}

func TestHandleMessageCompleteResolvesFirstSubstringMatch(t *testing.T) {
	store := &mockStore{tasks: []model.Task{
		{ID: "1", Text: "Buy milk", Complete: false},
		{ID: "2", Text: "Buy milk extra", Complete: true},
	}}
	uc := usecase.New(&mockLogger{}, stubClassifier{in: intent.IntentCompleteTask, params: intent.Params{"buy milk"}}, store, usecase.Config{DefaultAccessToken: "tok"})

	res := handle(uc, "ignored")

	require.True(t, res.Success)
	assert.Equal(t, usecase.MsgTaskCompleted, res.Response)
	require.Len(t, store.mutations(), 1)
	assert.Equal(t, storeCall{Method: "update", Credential: "tok", ID: "1", Complete: true}, store.mutations()[0])
}

func TestHandleMessageCompleteFromText(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}
	uc := newUseCase(store)

	res := handle(uc, "Mark 'WALK DOG' as done")

	require.True(t, res.Success)
	require.Len(t, store.mutations(), 1)
	assert.Equal(t, "3", store.mutations()[0].ID)
}

func TestHandleMessageCompleteByID(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}
	uc := newUseCase(store)

	res := handle(uc, "complete 5")

	require.True(t, res.Success)
	require.Len(t, store.calls, 1, "numeric ids skip the resolution read")
	assert.Equal(t, storeCall{Method: "update", Credential: "default-token", ID: "5", Complete: true}, store.calls[0])
}

func TestHandleMessageNotFound(t *testing.T) {
	for _, message := range []string{"complete nonexistent", "delete nonexistent"} {
		t.Run(message, func(t *testing.T) {
			store := &mockStore{tasks: sampleTasks()}

			res := handle(newUseCase(store), message)

			assert.False(t, res.Success)
			assert.Equal(t, "Task 'nonexistent' not found.", res.Response)
			assert.Empty(t, store.mutations())
		})
	}
}

func TestHandleMessageDeleteTask(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}

	res := handle(newUseCase(store), `remove "dog"`)

	require.True(t, res.Success)
	assert.Equal(t, intent.IntentDeleteTask, res.Intent)
	assert.Equal(t, usecase.MsgTaskDeleted, res.Response)
	require.Len(t, store.mutations(), 1)
	assert.Equal(t, storeCall{Method: "delete", Credential: "default-token", ID: "3"}, store.mutations()[0])
}

func TestHandleMessageUpdateFailsAfterResolution(t *testing.T) {
	store := &mockStore{
		tasks:     sampleTasks(),
		updateErr: &repository.RemoteError{StatusCode: 500, Body: "boom"},
	}

	res := handle(newUseCase(store), "complete walk dog")

	assert.False(t, res.Success)
	assert.Equal(t, "API Error: 500 - boom", res.Response)
	require.Len(t, store.calls, 2)
	assert.Equal(t, "list", store.calls[0].Method)
	assert.Equal(t, "update", store.calls[1].Method)
}

func TestHandleMessageRemoteErrorEveryIntent(t *testing.T) {
	remote := &repository.RemoteError{StatusCode: 503, Body: "service unavailable"}
	messages := map[intent.Intent]string{
		intent.IntentAddTask:        "add task to buy milk",
		intent.IntentListTasks:      "show all tasks",
		intent.IntentListIncomplete: "show me pending tasks",
		intent.IntentListComplete:   "show completed tasks",
		intent.IntentViewTask:       "task 1",
		intent.IntentCompleteTask:   "complete buy milk",
		intent.IntentDeleteTask:     "delete buy milk",
	}

	for want, message := range messages {
		t.Run(string(want), func(t *testing.T) {
			store := &mockStore{
				tasks:     sampleTasks(),
				listErr:   remote,
				getErr:    remote,
				createErr: remote,
				updateErr: remote,
				deleteErr: remote,
			}

			res := handle(newUseCase(store), message)

			assert.Equal(t, want, res.Intent)
			assert.False(t, res.Success)
			assert.Equal(t, "API Error: 503 - service unavailable", res.Response)
		})
	}
}

func TestHandleMessageUnexpectedError(t *testing.T) {
	store := &mockStore{listErr: errors.New("dial tcp: connection refused")}

	res := handle(newUseCase(store), "show all tasks")

	assert.False(t, res.Success)
	assert.Equal(t, "Error: dial tcp: connection refused", res.Response)
}

func TestHandleMessageCredential(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		store := &mockStore{tasks: sampleTasks()}
		uc := usecase.New(&mockLogger{}, intent.NewDefault(), store, usecase.Config{})

		res := handle(uc, "show all tasks")

		assert.False(t, res.Success)
		assert.Equal(t, intent.IntentListTasks, res.Intent)
		assert.Equal(t, usecase.MsgMissingCredential, res.Response)
		assert.Empty(t, store.calls)
	})

	t.Run("request overrides default", func(t *testing.T) {
		store := &mockStore{}
		uc := newUseCase(store)

		uc.HandleMessage(context.Background(), chat.HandleMessageInput{Message: "show all tasks", AccessToken: "mine"})
		handle(uc, "show all tasks")

		require.Len(t, store.calls, 2)
		assert.Equal(t, "mine", store.calls[0].Credential)
		assert.Equal(t, "default-token", store.calls[1].Credential)
	})
}

func TestHandleMessageUnknown(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}

	res := handle(newUseCase(store), "what's the weather like")

	assert.False(t, res.Success)
	assert.Equal(t, intent.IntentUnknown, res.Intent)
	assert.Equal(t, usecase.MsgHelp, res.Response)
	assert.Empty(t, store.calls)
}

func TestHandleMessageReadsAreIdempotent(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}
	uc := newUseCase(store)

	for _, message := range []string{"show all tasks", "show me pending tasks", "show completed tasks", "task 3"} {
		first := handle(uc, message)
		second := handle(uc, message)
		assert.Equal(t, first, second, message)
	}
	assert.Empty(t, store.mutations())
}

func TestHandleMessageConcurrent(t *testing.T) {
	store := &mockStore{tasks: sampleTasks()}
	uc := usecase.New(&mockLogger{}, intent.NewDefault(), store, usecase.Config{DefaultAccessToken: "default-token"})

	messages := []string{"show all tasks", "show me pending tasks", "show completed tasks", "task 3"}
	want := make(map[string]chat.ChatResult, len(messages))
	for _, message := range messages {
		want[message] = handle(uc, message)
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan string, workers*len(messages))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range messages {
				message := messages[(i+w)%len(messages)]
				token := fmt.Sprintf("token-%d", w)
				got := uc.HandleMessage(context.Background(), chat.HandleMessageInput{Message: message, AccessToken: token})
				if got != want[message] {
					errs <- fmt.Sprintf("%q: got %+v, want %+v", message, got, want[message])
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
	assert.Empty(t, store.mutations())

	// The default credential is never overwritten by a request token.
	res := handle(uc, "show all tasks")
	require.True(t, res.Success)
	store.mu.Lock()
	last := store.calls[len(store.calls)-1]
	store.mu.Unlock()
	assert.Equal(t, "default-token", last.Credential)
}
