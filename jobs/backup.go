package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/jaksoftwares/inventory-master/internal/inventory"
	jobmetrics "github.com/jaksoftwares/inventory-master/internal/jobs"
	"github.com/jaksoftwares/inventory-master/internal/platform/storage"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
)

// BackupKeyPrefix namespaces the timestamped snapshot keys.
const BackupKeyPrefix = "dovepeak-backup"

// BackupJob snapshots both state documents under timestamped keys. The job
// runs on a schedule but respects the auto-backup settings toggle, so
// disabling backups in the UI takes effect without redeploying the worker.
type BackupJob struct {
	Inventory *inventory.Store
	Supplier  *supplier.Store
	KV        storage.KV
	Logger    *slog.Logger
	Metrics   *jobmetrics.Metrics
	clock     func() time.Time
}

// NewBackupJob initialises the backup handler.
func NewBackupJob(inv *inventory.Store, sup *supplier.Store, kv storage.KV, logger *slog.Logger, metrics *jobmetrics.Metrics) *BackupJob {
	return &BackupJob{
		Inventory: inv,
		Supplier:  sup,
		KV:        kv,
		Logger:    logger,
		Metrics:   metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// NewBackupTask constructs the Asynq task for the scheduler.
func NewBackupTask() *asynq.Task {
	return asynq.NewTask(TaskTypeBackup, nil, asynq.Queue(QueueDefault))
}

// Handle writes the snapshots.
func (j *BackupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Inventory == nil || j.KV == nil {
		return asynq.SkipRetry
	}
	tracker := j.Metrics.Track("backup_snapshot")

	state := j.Inventory.State()
	if !state.Settings.AutoBackup {
		j.Logger.Debug("auto backup disabled, skipping snapshot")
		return tracker.End(nil)
	}

	stamp := j.clock().Format("2006-01-02T15-04-05Z")
	if err := j.writeSnapshot(ctx, fmt.Sprintf("%s-inventory-%s", BackupKeyPrefix, stamp), state); err != nil {
		return tracker.End(err)
	}
	if j.Supplier != nil {
		if err := j.writeSnapshot(ctx, fmt.Sprintf("%s-supplier-%s", BackupKeyPrefix, stamp), j.Supplier.State()); err != nil {
			return tracker.End(err)
		}
	}

	j.Logger.Info("backup snapshot written", slog.String("stamp", stamp))
	return tracker.End(nil)
}

func (j *BackupJob) writeSnapshot(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return j.KV.Set(ctx, key, data)
}
