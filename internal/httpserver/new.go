package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"time-vault-relay/config"
	"time-vault-relay/internal/middleware"
	tgDelivery "time-vault-relay/internal/relay/delivery/telegram"
	"time-vault-relay/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	version     string
	region      string
	mw          middleware.Middleware

	// Relay domain
	telegramConfig  config.TelegramConfig
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Version     string
	Region      string

	// Relay domain
	TelegramConfig  config.TelegramConfig
	TelegramHandler tgDelivery.Handler
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
		version:         cfg.Version,
		region:          cfg.Region,
		mw:              middleware.New(logger),
		telegramConfig:  cfg.TelegramConfig,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

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
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
