package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Extra
// handlers (rate limiting) run before Chat only.
func RegisterRoutes(r gin.IRoutes, h Handler, chatMiddlewares ...gin.HandlerFunc) {
	r.GET("/", h.Root)
	r.POST("/chat", append(chatMiddlewares, h.Chat)...)
}
