package usecase

import (
	"context"
	"errors"
	"fmt"

	"todo-chat/internal/chat"
	"todo-chat/internal/chat/repository"
	"todo-chat/internal/intent"
)

// HandleMessage runs one chat turn: credential check, classification,
// dispatch, and conversion of any failure into a ChatResult.
func (uc *implUseCase) HandleMessage(ctx context.Context, input chat.HandleMessageInput) chat.ChatResult {
	in, params := uc.classifier.Classify(input.Message)

	credential := input.AccessToken
	if credential == "" {
		credential = uc.cfg.DefaultAccessToken
	}
	if credential == "" {
		uc.l.Warnf(ctx, "chat.HandleMessage: %v", chat.ErrMissingCredential)
		return uc.failure(in, chat.ErrMissingCredential)
	}

	response, err := uc.dispatch(ctx, in, params, credential)
	if err != nil {
		uc.l.Warnf(ctx, "chat.HandleMessage: intent=%s: %v", in, err)
		return uc.failure(in, err)
	}

	uc.l.Infof(ctx, "chat.HandleMessage: intent=%s handled", in)
	return chat.ChatResult{
		Response: response,
		Intent:   in,
		Success:  true,
	}
}

// failure renders err according to its kind.
func (uc *implUseCase) failure(in intent.Intent, err error) chat.ChatResult {
	return chat.ChatResult{
		Response: errorMessage(err),
		Intent:   in,
		Success:  false,
	}
}

func errorMessage(err error) string {
	var (
		validation *chat.ValidationError
		resolution *chat.ResolutionError
		remote     *repository.RemoteError
	)

	switch {
	case errors.Is(err, chat.ErrMissingCredential):
		return MsgMissingCredential
	case errors.Is(err, errUnknownIntent):
		return MsgHelp
	case errors.As(err, &validation):
		return validation.Prompt
	case errors.As(err, &resolution):
		return resolution.Error()
	case errors.As(err, &remote):
		return fmt.Sprintf(MsgRemoteError, remote.StatusCode, remote.Body)
	default:
		return fmt.Sprintf(MsgUnexpectedError, err.Error())
	}
}
