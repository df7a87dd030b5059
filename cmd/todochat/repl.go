package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todo-chat/internal/chat"
)

const replPrompt = "> "

func newReplCmd(opts *rootOptions, newEngine engineFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Chat with your to-do list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newEngine(*opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "To-Do Chat. Type 'exit' or 'quit' to leave.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, replPrompt)
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}

				line := strings.TrimSpace(scanner.Text())
				switch strings.ToLower(line) {
				case "":
					continue
				case "exit", "quit":
					fmt.Fprintln(out, "Goodbye!")
					return nil
				}

				result := uc.HandleMessage(cmd.Context(), chat.HandleMessageInput{Message: line})
				fmt.Fprintln(out, result.Response)
			}
		},
	}
}
