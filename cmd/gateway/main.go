package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"shop-services/internal/config"
	"shop-services/internal/gateway"
	"shop-services/internal/server"
	"shop-services/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}

	cfg, err := config.Load(configPath, "gateway")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.NewWithConfig(logger.Config{
		Level:            cfg.Logger.Level,
		Format:           cfg.Logger.Format,
		OutputPath:       cfg.Logger.OutputPath,
		SlowQuerySeconds: cfg.Logger.SlowQuerySeconds,
		EnableSampling:   cfg.Logger.EnableSampling,
		ServiceName:      cfg.Logger.ServiceName,
		ServiceVersion:   cfg.Logger.ServiceVersion,
		Environment:      os.Getenv("APP_ENV"),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync() //nolint:errcheck

	registry := gateway.NewRegistry(cfg)
	h := gateway.NewHandler(registry, l)
	r := gateway.SetupRouter(h, l)

	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	srv := server.New(":"+cfg.App.HTTPPort, r)
	return server.Run(ctx, srv, l, time.Duration(cfg.App.ShutdownTimeoutSeconds)*time.Second)
}
