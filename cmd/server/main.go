package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/config"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/extractor"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/extractor/claude"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/extractor/openai"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/handler"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/port"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/repository/memory"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/router"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerProviders() {
	extractor.RegisterProvider("openai", func(cfg *config.ProviderConfig) (port.EntityExtractor, error) {
		return openai.NewExtractor(cfg), nil
	})
	extractor.RegisterProvider("claude", func(cfg *config.ProviderConfig) (port.EntityExtractor, error) {
		return claude.NewExtractor(cfg), nil
	})
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registerProviders()
	entityExtractor, err := extractor.NewExtractor(cfg.Extractor.PrimaryConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	// Initialize repositories
	sessionRepo := memory.NewSessionRepo()

	// Initialize services
	sessionSvc := service.NewSessionService(sessionRepo, entityExtractor, &cfg.Upload)

	// Start the idle-session sweeper
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	sweeper := service.NewSessionSweeper(sessionRepo, cfg.Session)
	go sweeper.Start(ctx)

	// Initialize handlers
	sessionH := handler.NewSessionHandler(sessionSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, sessionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
