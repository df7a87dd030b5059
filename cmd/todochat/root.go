package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todo-chat/config"
	"todo-chat/internal/app"
	"todo-chat/internal/chat"
	"todo-chat/internal/intent"
	"todo-chat/pkg/log"
)

// errUnsuccessful makes the process exit non-zero once the reply has been
// printed.
var errUnsuccessful = errors.New("message not handled")

type rootOptions struct {
	configPath string
	apiURL     string
	token      string
	verbose    bool
}

// engineFactory builds the chat engine for one invocation.
type engineFactory func(opts rootOptions) (chat.UseCase, error)

func defaultEngine(opts rootOptions) (chat.UseCase, error) {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.apiURL != "" {
		cfg.TaskStore.URL = opts.apiURL
	}
	if opts.token != "" {
		cfg.TaskStore.AccessToken = opts.token
	}

	l := log.NewNop()
	if opts.verbose {
		l = app.NewLogger(cfg)
	}
	return app.NewChatUseCase(cfg, l), nil
}

// askExamples are printed in the root help, each with the intent it must
// classify as.
var askExamples = []struct {
	Message string
	Intent  intent.Intent
}{
	{Message: "add a task to buy milk", Intent: intent.IntentAddTask},
	{Message: "show incomplete tasks", Intent: intent.IntentListIncomplete},
	{Message: "mark buy milk as done", Intent: intent.IntentCompleteTask},
}

func longHelp() string {
	var b strings.Builder
	b.WriteString("todochat manages a one-list to-do list with plain English commands.\n\nExamples:\n")
	for _, ex := range askExamples {
		fmt.Fprintf(&b, "  todochat ask %s\n", ex.Message)
	}
	b.WriteString("  todochat repl")
	return b.String()
}

func newRootCmd(newEngine engineFactory) *cobra.Command {
	opts := rootOptions{}

	root := &cobra.Command{
		Use:           "todochat",
		Short:         "Talk to your to-do list",
		Long:          longHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yaml")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "one-list API base URL (overrides task_store.url)")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "one-list access token (overrides ACCESS_TOKEN)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to the task store")

	root.AddCommand(
		newAskCmd(&opts, newEngine),
		newReplCmd(&opts, newEngine),
	)
	return root
}
