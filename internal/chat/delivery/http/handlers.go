package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-chat/pkg/response"
)

// RootMessage is returned by GET /.
const RootMessage = "To-Do Chat API is running"

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies a free-text message, runs it against the to-do list and returns the rendered reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional access token"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.HandleMessage(ctx, req.toInput())

	// The body is the bare result rather than the response envelope; chat
	// clients read response/intent/success at the top level.
	c.JSON(http.StatusOK, h.newChatResp(output))
}

// Root godoc
// @Summary     Service banner
// @Tags        Health
// @Produce     json
// @Success     200 {object} rootResp
// @Router      / [GET]
func (h *handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, rootResp{Message: RootMessage})
}
