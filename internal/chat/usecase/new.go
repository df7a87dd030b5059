package usecase

import (
	"todo-chat/internal/chat"
	"todo-chat/internal/chat/repository"
	"todo-chat/internal/intent"
	pkgLog "todo-chat/pkg/log"
)

// Config is fixed at construction and only read afterwards.
type Config struct {
	// DefaultAccessToken is used when a request carries no credential.
	DefaultAccessToken string
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Classifier
	store      repository.TaskStore
	cfg        Config
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	classifier intent.Classifier,
	store repository.TaskStore,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		store:      store,
		cfg:        cfg,
	}
}
