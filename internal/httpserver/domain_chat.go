package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "todo-chat/internal/chat/delivery/http"
	"todo-chat/internal/middleware"
)

// setupChatDomain registers the chat endpoints.
//
// The use case is built by the caller and shared with the other adapters:
//  1. Create HTTP Handler: h := chatHTTP.New(srv.l, srv.chatUC)
//  2. Register Routes:     chatHTTP.RegisterRoutes(r, h, mw.RateLimit())
func (srv HTTPServer) setupChatDomain(ctx context.Context, r gin.IRoutes, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(r, h, mw.RateLimit())

	srv.l.Infof(ctx, "Chat routes registered at GET / and POST /chat")
	return nil
}
