package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatDelivery "study-companion/internal/chat/delivery/http"
	"study-companion/internal/middleware"
	quizDelivery "study-companion/internal/quiz/delivery/http"
	ttDelivery "study-companion/internal/timetable/delivery/http"
	"study-companion/pkg/agentgw"
	"study-companion/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw    middleware.Middleware
	agent agentgw.IAgent

	timetableHandler ttDelivery.Handler
	chatHandler      chatDelivery.Handler
	quizHandler      quizDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Agent      agentgw.IAgent

	TimetableHandler ttDelivery.Handler
	ChatHandler      chatDelivery.Handler
	QuizHandler      quizDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                cfg.Logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		agent:            cfg.Agent,
		timetableHandler: cfg.TimetableHandler,
		chatHandler:      cfg.ChatHandler,
		quizHandler:      cfg.QuizHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timetableHandler == nil {
		return errors.New("timetable handler is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.quizHandler == nil {
		return errors.New("quiz handler is required")
	}
	return nil
}
