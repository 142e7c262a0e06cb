package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/jaksoftwares/inventory-master/internal/app"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
	jobmetrics "github.com/jaksoftwares/inventory-master/internal/jobs"
	"github.com/jaksoftwares/inventory-master/internal/observability"
	"github.com/jaksoftwares/inventory-master/internal/platform/storage"
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

	metrics := observability.NewMetrics()
	taskMetrics := jobmetrics.NewMetrics(metrics.Registerer())

	client, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init queue client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("queue client close", slog.Any("error", err))
		}
	}()

	backupJob := jobs.NewBackupJob(inventoryStore, supplierStore, kv, logger, taskMetrics)
	lowStockJob := &jobs.LowStockJob{
		Store:      inventoryStore,
		Enqueuer:   client,
		Logger:     logger,
		Metrics:    taskMetrics,
		HTTPMetric: metrics,
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeBackup, Handler: backupJob.Handle},
			{Type: jobs.TaskTypeLowStock, Handler: lowStockJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.BackupSchedule, Task: jobs.NewBackupTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: cfg.LowStockSchedule, Task: jobs.NewLowStockTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
