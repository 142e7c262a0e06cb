package inventory

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jaksoftwares/inventory-master/internal/platform/storage"
)

func newTestAdapter(t *testing.T) (*Adapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	kv := storage.NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewAdapter(kv, nil), mr
}

func TestSaveLoadRoundTrip(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))
	svc := NewService(store, nil)

	created, err := svc.CreateProduct(ctx, ProductInput{Name: "Desk Lamp", SKU: "DL-001", Quantity: 4})
	require.NoError(t, err)
	order, err := svc.CreatePurchaseOrder(ctx, OrderInput{
		SupplierID: "1",
		Items:      []OrderItem{{ProductID: created.ID, Quantity: 2, UnitCost: 7.5}},
	})
	require.NoError(t, err)

	// A fresh store over the same adapter sees an equivalent state.
	reloaded := NewStore(adapter, nil)
	require.NoError(t, reloaded.Open(ctx))
	state := reloaded.State()

	require.Equal(t, store.State().Products, state.Products)
	require.Equal(t, store.State().Categories, state.Categories)
	require.Equal(t, store.State().Suppliers, state.Suppliers)
	require.Len(t, state.PurchaseOrders, 1)
	require.Equal(t, order.ID, state.PurchaseOrders[0].ID)
	require.True(t, order.OrderDate.Equal(state.PurchaseOrders[0].OrderDate))
}

func TestLoadSeedsOnMissingDocument(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))

	state := store.State()
	require.Len(t, state.Categories, 3)
	require.Len(t, state.Suppliers, 2)
	require.Len(t, state.Products, 3)
	require.Equal(t, DefaultSettings(), state.Settings)
}

func TestLoadSeedsOnMalformedDocument(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(DataKey, `{"products": "not-a-list"`))

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))
	require.Len(t, store.State().Products, 3)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(DataKey, `{"products":[],"mystery":true}`))

	_, ok := adapter.Load(ctx)
	require.False(t, ok)
}

func TestSettingsMergeOverDefaults(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(SettingsKey, `{"currency":"KES","lowStockThreshold":3}`))

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))

	settings := store.State().Settings
	require.Equal(t, "KES", settings.Currency)
	require.Equal(t, 3, settings.LowStockThreshold)
	// Untouched fields keep their defaults.
	require.Equal(t, "Dovepeak Inventory Manager", settings.CompanyName)
	require.True(t, settings.EnableNotifications)
}

func TestResetClearsAndReseeds(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))
	svc := NewService(store, nil)

	_, err := svc.CreateProduct(ctx, ProductInput{Name: "Extra"})
	require.NoError(t, err)
	require.Len(t, store.State().Products, 4)

	require.NoError(t, store.Reset(ctx))
	require.Len(t, store.State().Products, 3)
	require.True(t, mr.Exists(DataKey))
}
