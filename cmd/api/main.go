package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"study-companion/config"
	_ "study-companion/docs" // Swagger docs
	chatDelivery "study-companion/internal/chat/delivery/http"
	chatUsecase "study-companion/internal/chat/usecase"
	"study-companion/internal/httpserver"
	"study-companion/internal/middleware"
	quizDelivery "study-companion/internal/quiz/delivery/http"
	quizUsecase "study-companion/internal/quiz/usecase"
	ttDelivery "study-companion/internal/timetable/delivery/http"
	ttUsecase "study-companion/internal/timetable/usecase"
	"study-companion/pkg/agentgw"
	"study-companion/pkg/gcalendar"
	"study-companion/pkg/log"
)

// @title       Study Companion API
// @description Gateway over the study agent backend: timetable parsing, tutoring chat, quizzes, and progress tracking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Companion...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Agent backend: %s", cfg.Agent.BaseURL)

	// 3. Agent gateway
	agent := agentgw.NewClient(cfg.Agent.BaseURL, cfg.Agent.Timeout)
	if err := agent.Health(ctx); err != nil {
		logger.Warnf(ctx, "Agent backend not reachable yet (continuing): %v", err)
	}

	// 4. Google Calendar client (optional)
	var calendarClient ttUsecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = gcal
		}
	}

	// 5. UseCases
	timetableUC := ttUsecase.New(logger, agent, calendarClient,
		cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)

	chatUC, err := chatUsecase.New(logger, agent, cfg.Chat.HistoryLimit, cfg.Chat.MaxUsers)
	if err != nil {
		logger.Error(ctx, "Failed to initialize chat usecase: ", err)
		return
	}

	quizUC := quizUsecase.New(logger, agent)

	// 6. Delivery handlers
	timetableHandler := ttDelivery.New(logger, timetableUC)
	chatHandler := chatDelivery.New(logger, chatUC)
	quizHandler := quizDelivery.New(logger, quizUC)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		Agent:            agent,
		TimetableHandler: timetableHandler,
		ChatHandler:      chatHandler,
		QuizHandler:      quizHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
