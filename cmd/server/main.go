// Package main implements the entry point for the Luna API server,
// which turns a topic into generated learning content: slideshows with
// timed reveal, multiple-choice quizzes, reading lists, and flashcards.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lunalearn/luna-api/internal/config"
	"github.com/lunalearn/luna-api/internal/generation"
	"github.com/lunalearn/luna-api/internal/platform/gemini"
	"github.com/lunalearn/luna-api/internal/platform/logger"
	"github.com/lunalearn/luna-api/internal/platform/openai"
	"github.com/lunalearn/luna-api/internal/platform/relay"
	"github.com/lunalearn/luna-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

// application holds the server's wired dependencies.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	slideshowService *service.SlideshowService
	quizService      *service.QuizService
	flashcardService *service.FlashcardService
}

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.serve(); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and wires all application components.
func initializeApp(ctx context.Context) (*application, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_backend", cfg.LLM.Backend)

	generator, err := newGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	slideshowService, err := service.NewSlideshowService(appLogger, generator, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create slideshow service: %w", err)
	}

	quizService, err := service.NewQuizService(appLogger, generator, nil, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz service: %w", err)
	}

	flashcardService, err := service.NewFlashcardService(appLogger, generator)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           appLogger,
		slideshowService: slideshowService,
		quizService:      quizService,
		flashcardService: flashcardService,
	}, nil
}

// newGenerator selects the text-generation backend from configuration.
func newGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	switch cfg.Backend {
	case "gemini":
		return gemini.NewGenerator(ctx, logger, cfg)
	case "openai":
		return openai.NewGenerator(logger, cfg)
	case "relay":
		return relay.NewClient(logger, cfg.RelayURL)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests within the shutdown timeout.
func (app *application) serve() error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		app.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	app.logger.Info("server stopped")
	return nil
}
