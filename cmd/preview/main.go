package main

import (
	"context"
	"log"
	"os"

	"github.com/nulzo/modeldocs/cmd"
	"github.com/nulzo/modeldocs/internal/config"
	"github.com/nulzo/modeldocs/internal/docs"
	"github.com/nulzo/modeldocs/internal/gateway"
	"github.com/nulzo/modeldocs/internal/platform/logger"
	platformotel "github.com/nulzo/modeldocs/internal/platform/otel"
	"github.com/nulzo/modeldocs/internal/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Initialize(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	defer logger.Sync()
	zl := logger.Get()

	cmd.CheckForUpdates()

	if cfg.Tracing.Enabled {
		shutdown, err := platformotel.InitTracer("modeldocs-preview", zl, os.Stderr)
		if err != nil {
			zl.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
	}

	client := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout(), zl)
	generator := docs.NewGenerator(client, cfg, zl)

	srv := server.New(cfg, zl, generator)
	if err := srv.Run(); err != nil {
		zl.Fatal("Server failed", zap.Error(err))
	}
}
