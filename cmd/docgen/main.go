package main

import (
	"context"
	"log"
	"os"

	"github.com/nulzo/modeldocs/internal/config"
	"github.com/nulzo/modeldocs/internal/docs"
	"github.com/nulzo/modeldocs/internal/gateway"
	"github.com/nulzo/modeldocs/internal/platform/logger"
	platformotel "github.com/nulzo/modeldocs/internal/platform/otel"
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

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		shutdown, err := platformotel.InitTracer("modeldocs", zl, os.Stderr)
		if err != nil {
			zl.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			_ = shutdown(ctx)
		}()
	}

	client := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout(), zl)
	generator := docs.NewGenerator(client, cfg, zl)

	count, err := generator.Generate(ctx)
	if err != nil {
		zl.Fatal("Documentation generation failed", zap.Error(err))
	}

	zl.Info("Done",
		zap.String("output", cfg.Docs.OutputPath),
		zap.Int("models", count),
	)
}
