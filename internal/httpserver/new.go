package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-chat/internal/chat"
	tgDelivery "todo-chat/internal/chat/delivery/telegram"
	"todo-chat/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting
	allowedOrigins  []string
	rateLimitPerMin int

	// Chat domain
	chatUC               chat.UseCase
	telegramHandler      tgDelivery.Handler
	hasDefaultCredential bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AllowedOrigins  []string
	RateLimitPerMin int

	// Chat domain
	ChatUseCase       chat.UseCase
	TelegramHandler   tgDelivery.Handler // optional
	DefaultCredential bool               // reported by /health
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		chatUC:          cfg.ChatUseCase,
		telegramHandler: cfg.TelegramHandler,

		hasDefaultCredential: cfg.DefaultCredential,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}

// Handler maps all routes and returns the root handler, CORS included.
func (srv HTTPServer) Handler() (http.Handler, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv.withCORS(srv.gin), nil
}
