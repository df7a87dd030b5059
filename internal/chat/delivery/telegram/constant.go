package telegram

import (
	"strings"

	"todo-chat/internal/intent"
)

const (
	cmdStart = "/start"
	cmdHelp  = "/help"

	// helpKeyword classifies as unknown, so the engine answers with its
	// usage text.
	helpKeyword = "help"

	msgProcessingFailed = "Something went wrong while handling your message. Please try again."
)

// welcomeExamples are shown by /start, each with the intent it must
// classify as.
var welcomeExamples = []struct {
	Text   string
	Intent intent.Intent
}{
	{Text: "add a task to buy milk", Intent: intent.IntentAddTask},
	{Text: "show all tasks", Intent: intent.IntentListTasks},
	{Text: "mark buy milk as done", Intent: intent.IntentCompleteTask},
}

var msgWelcome = buildWelcome()

func buildWelcome() string {
	var b strings.Builder
	b.WriteString("👋 Welcome to *To-Do Chat*!\n\n")
	b.WriteString("Tell me what to do with your list in plain words, for example:\n")
	for _, ex := range welcomeExamples {
		b.WriteString("• `" + ex.Text + "`\n")
	}
	b.WriteString("\nSend /help to see everything I understand.")
	return b.String()
}
