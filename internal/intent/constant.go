package intent

// DefaultRules is the rule table. Order is load-bearing: the first pattern
// that matches anywhere in the message wins, so broader rules must come
// after the narrower ones they would otherwise shadow.
var DefaultRules = []Rule{
	{
		Intent: IntentAddTask,
		Patterns: []string{
			`add\s+(?:a\s+)?(?:new\s+)?task\s+(?:to\s+)?(.+)`,
			`create\s+(?:a\s+)?(?:new\s+)?task\s+(?:to\s+)?(.+)`,
			`new\s+task[:\s]+(.+)`,
			`remind\s+me\s+to\s+(.+)`,
		},
	},
	{
		Intent: IntentListTasks,
		Patterns: []string{
			`(?:show|list|view|display|get)\s+(?:all\s+)?(?:my\s+)?tasks?`,
			`what\s+(?:are\s+)?(?:my\s+)?tasks?`,
			`show\s+me\s+(?:my\s+)?(?:all\s+)?tasks?`,
		},
	},
	{
		Intent: IntentListIncomplete,
		Patterns: []string{
			`(?:show|list|view|what)\s+.*(?:incomplete|pending|unfinished|undone)`,
			`(?:incomplete|pending|unfinished|undone)\s+tasks?`,
		},
	},
	{
		Intent: IntentListComplete,
		Patterns: []string{
			`(?:show|list|view|what)\s+.*(?:complete|completed|done|finished)`,
			`(?:complete|completed|done|finished)\s+tasks?`,
		},
	},
	{
		Intent: IntentViewTask,
		Patterns: []string{
			`(?:show|view|display|get)\s+task\s+(?:number\s+)?(\d+)`,
			`task\s+(?:number\s+)?(\d+)`,
		},
	},
	{
		Intent: IntentCompleteTask,
		Patterns: []string{
			`(?:mark|set|complete|finish)\s+(?:task\s+)?['"]?(.+?)['"]?\s+(?:as\s+)?(?:done|complete|completed|finished)`,
			// A lazy capture with nothing after it would stop at one
			// character, hence the end anchor.
			`(?:done|complete|finish)\s+(?:task\s+)?['"]?(.+?)['"]?\s*$`,
			`complete\s+task\s+(\d+)`,
		},
	},
	{
		Intent: IntentDeleteTask,
		Patterns: []string{
			`delete\s+(?:task\s+)?['"]?(.+?)['"]?\s*$`,
			`remove\s+(?:task\s+)?['"]?(.+?)['"]?\s*$`,
		},
	},
}
