package intent

// Intent is the classified category of a user request.
type Intent string

const (
	IntentAddTask        Intent = "add_task"
	IntentListTasks      Intent = "list_tasks"
	IntentListIncomplete Intent = "list_incomplete"
	IntentListComplete   Intent = "list_complete"
	IntentViewTask       Intent = "view_task"
	IntentCompleteTask   Intent = "complete_task"
	IntentDeleteTask     Intent = "delete_task"
	IntentUnknown        Intent = "unknown"
)

// Params are the substrings captured by the matching pattern, in capture
// order. A nil Params means the pattern had no groups (or nothing matched);
// callers distinguish that from an empty capture.
type Params []string

// First returns the first captured value and whether one was captured.
func (p Params) First() (string, bool) {
	if len(p) == 0 {
		return "", false
	}
	return p[0], true
}

// Rule binds an intent to its patterns, tried in order.
type Rule struct {
	Intent   Intent
	Patterns []string
}
