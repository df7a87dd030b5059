package usecase

// User-facing messages
const (
	MsgMissingCredential = "Please configure your ACCESS_TOKEN to use this service."

	PromptTaskName         = "Please specify a task name."
	PromptTaskNumber       = "Please specify a task number."
	PromptCompleteWhich    = "Please specify which task to complete."
	PromptDeleteWhich      = "Please specify which task to delete."
	MsgTaskCreated         = "✓ Task created: \"%s\""
	MsgTaskCompleted       = "✓ Task marked as complete!"
	MsgTaskDeleted         = "✓ Task deleted successfully!"
	MsgNoTasks             = "You have no tasks."
	MsgNoIncompleteTasks   = "You have no incomplete tasks. Great job!"
	MsgNoCompletedTasks    = "You have no completed tasks yet."
	MsgTaskCount           = "You have %d task(s):\n\n%s"
	MsgIncompleteTaskCount = "You have %d incomplete task(s):\n\n%s"
	MsgCompletedTaskCount  = "You have %d completed task(s):\n\n%s"
	MsgTaskDetail          = "Task #%s:\n\nName: %s\nStatus: %s"
	MsgRemoteError         = "API Error: %d - %s"
	MsgUnexpectedError     = "Error: %s"

	MsgHelp = "I'm not sure what you want to do. You can:\n\n" +
		"• Add a task: 'Add a task to buy milk'\n" +
		"• List tasks: 'Show all tasks'\n" +
		"• View a task: 'Task 2'\n" +
		"• Complete a task: 'Mark buy milk as done'\n" +
		"• Delete a task: 'Delete buy milk'"
)

// Status markers
const (
	MarkCompleted  = "✓"
	MarkIncomplete = "○"

	StatusCompleted  = MarkCompleted + " Completed"
	StatusIncomplete = MarkIncomplete + " Incomplete"
)
