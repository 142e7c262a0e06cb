package jobs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/observability"
	"github.com/jaksoftwares/inventory-master/internal/platform/storage"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testKV(t *testing.T) (*miniredis.Miniredis, storage.KV) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, storage.NewRedisKV(client)
}

func openStores(t *testing.T) (*inventory.Store, *supplier.Store) {
	t.Helper()
	inv := inventory.NewStore(nil, nil)
	sup := supplier.NewStore(nil, nil)
	require.NoError(t, inv.Open(context.Background()))
	require.NoError(t, sup.Open(context.Background()))
	return inv, sup
}

func TestBackupJobWritesTimestampedSnapshots(t *testing.T) {
	mr, kv := testKV(t)
	inv, sup := openStores(t)

	job := NewBackupJob(inv, sup, kv, discardLogger(), nil)
	job.clock = func() time.Time { return time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC) }

	require.NoError(t, job.Handle(context.Background(), NewBackupTask()))

	raw, err := mr.Get("dovepeak-backup-inventory-2024-06-01T03-00-00Z")
	require.NoError(t, err)
	var snapshot inventory.State
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))
	require.NotEmpty(t, snapshot.Products)

	_, err = mr.Get("dovepeak-backup-supplier-2024-06-01T03-00-00Z")
	require.NoError(t, err)
}

func TestBackupJobRespectsAutoBackupToggle(t *testing.T) {
	mr, kv := testKV(t)
	inv, sup := openStores(t)

	settings := inv.State().Settings
	settings.AutoBackup = false
	require.NoError(t, inv.Dispatch(context.Background(), inventory.UpdateSettings{Settings: settings}))

	job := NewBackupJob(inv, sup, kv, discardLogger(), nil)
	require.NoError(t, job.Handle(context.Background(), NewBackupTask()))

	require.Empty(t, mr.Keys())
}

type capturedEmail struct {
	payloads []SendEmailPayload
}

func (c *capturedEmail) EnqueueSendEmail(ctx context.Context, payload SendEmailPayload) error {
	c.payloads = append(c.payloads, payload)
	return nil
}

func TestLowStockJobEnqueuesAlertWhenEnabled(t *testing.T) {
	inv, _ := openStores(t)

	settings := inv.State().Settings
	settings.EnableEmailAlerts = true
	require.NoError(t, inv.Dispatch(context.Background(), inventory.UpdateSettings{Settings: settings}))

	sink := &capturedEmail{}
	job := &LowStockJob{
		Store:      inv,
		Enqueuer:   sink,
		Logger:     discardLogger(),
		HTTPMetric: observability.NewMetrics(),
	}

	require.NoError(t, job.Handle(context.Background(), NewLowStockTask()))

	// seeded data includes a product below the default threshold
	require.Len(t, sink.payloads, 1)
	require.Contains(t, sink.payloads[0].Subject, "Low stock alert")
}

func TestLowStockJobRespectsAlertToggle(t *testing.T) {
	inv, _ := openStores(t)

	sink := &capturedEmail{}
	job := &LowStockJob{
		Store:      inv,
		Enqueuer:   sink,
		Logger:     discardLogger(),
		HTTPMetric: observability.NewMetrics(),
	}

	require.NoError(t, job.Handle(context.Background(), NewLowStockTask()))

	require.Empty(t, sink.payloads)
}
