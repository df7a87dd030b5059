package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todo-chat/internal/chat"
)

func newAskCmd(opts *rootOptions, newEngine engineFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message...>",
		Short: "Send one message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newEngine(*opts)
			if err != nil {
				return err
			}

			result := uc.HandleMessage(cmd.Context(), chat.HandleMessageInput{
				Message: strings.Join(args, " "),
			})
			fmt.Fprintln(cmd.OutOrStdout(), result.Response)

			if !result.Success {
				return errUnsuccessful
			}
			return nil
		},
	}
}
