package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/jaksoftwares/inventory-master/internal/app"
	"github.com/jaksoftwares/inventory-master/internal/export"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/observability"
	"github.com/jaksoftwares/inventory-master/internal/platform/storage"
	"github.com/jaksoftwares/inventory-master/internal/reports"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
	"github.com/jaksoftwares/inventory-master/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := storage.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	kv := storage.NewRedisKV(redisClient)

	inventoryStore := inventory.NewStore(inventory.NewAdapter(kv, logger), logger)
	if err := inventoryStore.Open(ctx); err != nil {
		logger.Error("open inventory store", slog.Any("error", err))
		os.Exit(1)
	}
	supplierStore := supplier.NewStore(supplier.NewAdapter(kv, logger), logger)
	if err := supplierStore.Open(ctx); err != nil {
		logger.Error("open supplier store", slog.Any("error", err))
		os.Exit(1)
	}

	inventoryService := inventory.NewService(inventoryStore, logger)
	supplierService := supplier.NewService(supplierStore, logger)

	metrics := observability.NewMetrics()

	renderer := &export.PDFRenderer{Endpoint: cfg.GotenbergURL}

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		InventoryHandler: inventory.NewHandler(logger, inventoryService),
		SupplierHandler:  supplier.NewHandler(logger, supplierService),
		ReportsHandler:   reports.NewHandler(inventoryStore, supplierStore),
		ExportHandler:    export.NewHandler(logger, inventoryStore, renderer),
		JobsHandler:      jobs.NewHandler(inspector, logger),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
