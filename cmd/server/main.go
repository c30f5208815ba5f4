package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/renalplate/backend/config"
	httpDelivery "github.com/renalplate/backend/internal/delivery/http"
	"github.com/renalplate/backend/internal/domain"
	"github.com/renalplate/backend/internal/infrastructure/fdc"
	"github.com/renalplate/backend/internal/infrastructure/session"
	"github.com/renalplate/backend/internal/usecase"
	"github.com/renalplate/backend/pkg/logger"
)

func main() {
	// Missing .env files are fine; configuration can come straight from
	// the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logger.Must(logger.New(cfg.Server.Environment))
	defer log.Sync()

	log.Info("starting renalplate backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("fdc_base_url", cfg.FDC.BaseURL),
		zap.Duration("session_ttl", cfg.Session.TTL),
	)

	fdcClient := fdc.NewClient(cfg.FDC.APIKey, cfg.FDC.BaseURL, logger.Named(log, "fdc"))
	sessions := session.NewStore(cfg.Session.TTL)

	resolver := usecase.NewFoodResolver(fdcClient, logger.Named(log, "resolver"))
	tracker := usecase.NewTracker(resolver, domain.DefaultLimits, logger.Named(log, "tracker"))

	handler := httpDelivery.NewHandler(
		resolver,
		tracker,
		sessions,
		domain.DefaultLimits,
		cfg.FDC.MaxResults,
		logger.Named(log, "http"),
	)

	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
