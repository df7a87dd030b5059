package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-chat/config"
	_ "todo-chat/docs" // Swagger docs
	"todo-chat/internal/app"
	tgDelivery "todo-chat/internal/chat/delivery/telegram"
	"todo-chat/internal/httpserver"
	"todo-chat/pkg/telegram"
)

// @title       To-Do Chat API
// @description Natural-language front end for a remote to-do list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := app.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting To-Do Chat API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store URL: %s (auth mode %s)", cfg.TaskStore.URL, cfg.TaskStore.AuthMode)
	if cfg.TaskStore.AccessToken == "" {
		logger.Warn(ctx, "ACCESS_TOKEN is not set, requests without a token will be refused")
	}

	// 3. Chat domain
	chatUC := app.NewChatUseCase(cfg, logger)

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ChatUseCase:     chatUC,
		TelegramHandler: telegramHandler,

		DefaultCredential: cfg.TaskStore.AccessToken != "",
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
