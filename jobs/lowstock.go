package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/jaksoftwares/inventory-master/internal/export"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
	jobmetrics "github.com/jaksoftwares/inventory-master/internal/jobs"
	"github.com/jaksoftwares/inventory-master/internal/observability"
)

// LowStockJob scans products against the settings threshold, publishes the
// count as a gauge, and enqueues an alert email when email alerts are on.
type LowStockJob struct {
	Store      *inventory.Store
	Enqueuer   EmailEnqueuer
	Logger     *slog.Logger
	Metrics    *jobmetrics.Metrics
	HTTPMetric *observability.Metrics
}

// EmailEnqueuer hands a composed draft to the mail queue.
type EmailEnqueuer interface {
	EnqueueSendEmail(ctx context.Context, payload SendEmailPayload) error
}

// NewLowStockTask constructs the Asynq task for the scheduler.
func NewLowStockTask() *asynq.Task {
	return asynq.NewTask(TaskTypeLowStock, nil, asynq.Queue(QueueDefault))
}

// Handle runs the scan.
func (j *LowStockJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Store == nil {
		return asynq.SkipRetry
	}
	tracker := j.Metrics.Track("low_stock_scan")

	state := j.Store.State()
	var low []inventory.Product
	for _, p := range state.Products {
		if p.Quantity <= state.Settings.LowStockThreshold {
			low = append(low, p)
		}
	}
	j.HTTPMetric.SetLowStockCount(len(low))

	if len(low) == 0 || !state.Settings.EnableEmailAlerts || j.Enqueuer == nil {
		return tracker.End(nil)
	}

	msg := export.BuildLowStockEmail(low, state.Settings)
	if err := j.Enqueuer.EnqueueSendEmail(ctx, SendEmailPayload{To: msg.To, Subject: msg.Subject, Body: msg.Body}); err != nil {
		j.Logger.Error("enqueue low stock alert", slog.Any("error", err))
		return tracker.End(err)
	}
	j.Metrics.AddAlerts(1)
	j.Logger.Info("low stock alert enqueued", slog.Int("products", len(low)))
	return tracker.End(nil)
}
