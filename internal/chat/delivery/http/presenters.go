package http

import (
	"strings"

	"todo-chat/internal/chat"
	"todo-chat/internal/intent"
)

// --- Request DTOs ---

type chatReq struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.HandleMessageInput {
	return chat.HandleMessageInput{
		Message:     r.Message,
		AccessToken: r.AccessToken,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response string        `json:"response"`
	Intent   intent.Intent `json:"intent"`
	Success  bool          `json:"success"`
}

func (h *handler) newChatResp(out chat.ChatResult) chatResp {
	return chatResp{
		Response: out.Response,
		Intent:   out.Intent,
		Success:  out.Success,
	}
}

type rootResp struct {
	Message string `json:"message"`
}
