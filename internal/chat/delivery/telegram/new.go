package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-chat/internal/chat"
	pkgLog "todo-chat/pkg/log"
	pkgTelegram "todo-chat/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of the Bot API the handler uses.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Sender) Handler {
	return &handler{l: l, uc: uc, bot: bot}
}

var _ Sender = (*pkgTelegram.Bot)(nil)
