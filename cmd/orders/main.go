package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"shop-services/internal/adapter/db/postgres"
	"shop-services/internal/adapter/enrichment"
	"shop-services/internal/adapter/gin/handler"
	"shop-services/internal/adapter/gin/router"
	"shop-services/internal/config"
	"shop-services/internal/server"
	"shop-services/internal/usecase/order"
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

	cfg, err := config.Load(configPath, "orders")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateStore(); err != nil {
		return err
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

	db, err := postgres.NewDB(cfg, l, &postgres.OrderSchema{})
	if err != nil {
		return err
	}
	defer postgres.CloseDB(db) //nolint:errcheck

	names := enrichment.NewClient(cfg.Services.UsersServiceURL, cfg.Services.ProductsServiceURL, l)

	repo := postgres.NewOrderRepoPG(db, l)
	uc := order.New(repo, names, l)
	h := handler.NewOrderHandler(uc, l)
	r := router.SetupOrdersRouter(h, l)

	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	srv := server.New(":"+cfg.App.HTTPPort, r)
	return server.Run(ctx, srv, l, time.Duration(cfg.App.ShutdownTimeoutSeconds)*time.Second)
}
