// Package app assembles the chat engine from configuration. It is shared by
// the API server and the CLI.
package app

import (
	"todo-chat/config"
	"todo-chat/internal/chat"
	"todo-chat/internal/chat/repository/onelist"
	"todo-chat/internal/chat/usecase"
	"todo-chat/internal/intent"
	"todo-chat/pkg/log"
)

// NewChatUseCase wires the classifier, the one-list store and the dispatcher.
func NewChatUseCase(cfg *config.Config, l log.Logger) chat.UseCase {
	client := onelist.NewClient(cfg.TaskStore.URL, onelist.AuthMode(cfg.TaskStore.AuthMode), cfg.TaskStore.Timeout)
	store := onelist.New(client, l)

	return usecase.New(l, intent.NewDefault(), store, usecase.Config{
		DefaultAccessToken: cfg.TaskStore.AccessToken,
	})
}

// NewLogger builds the process logger from the logger section.
func NewLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}
