package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-chat/internal/chat"
	"todo-chat/internal/intent"
	pkgLog "todo-chat/pkg/log"
	pkgResponse "todo-chat/pkg/response"
	pkgTelegram "todo-chat/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and answers the message in
// the background, since the remote store may be slower than Telegram's webhook
// deadline.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestIDFromContext(ctx))
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			if sendErr := h.bot.SendMessageWithMode(bgCtx, msg.Chat.ID, msgProcessingFailed, ""); sendErr != nil {
				h.l.Errorf(bgCtx, "telegram handler: failed to notify chat %d: %v", msg.Chat.ID, sendErr)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	switch {
	case msg.IsCommand(cmdStart):
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgWelcome, "Markdown")
	case msg.IsCommand(cmdHelp):
		return h.reply(ctx, msg.Chat.ID, helpKeyword)
	}
	return h.reply(ctx, msg.Chat.ID, msg.Text)
}

// reply runs text through the chat engine with the server's default
// credential and sends the response back verbatim.
func (h *handler) reply(ctx context.Context, chatID int64, text string) error {
	result := h.uc.HandleMessage(ctx, chat.HandleMessageInput{Message: text})
	if !result.Success && result.Intent != intent.IntentUnknown {
		h.l.Warnf(ctx, "telegram handler: chat %d intent=%s failed: %s", chatID, result.Intent, result.Response)
	}
	return h.bot.SendMessageWithMode(ctx, chatID, result.Response, "")
}
