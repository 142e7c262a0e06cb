package supplier

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

func TestSupplierRoundTrip(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))
	svc := NewService(store, nil)

	customer, err := svc.CreateCustomer(ctx, CustomerInput{Name: "New Customer"})
	require.NoError(t, err)
	comm, err := svc.AddCommunication(ctx, CommunicationInput{
		CustomerID: customer.ID, Type: CommGeneral, Subject: "Hello", Message: "Hi",
	})
	require.NoError(t, err)

	reloaded := NewStore(adapter, nil)
	require.NoError(t, reloaded.Open(ctx))
	state := reloaded.State()

	require.Equal(t, store.State().Customers, state.Customers)
	require.Equal(t, store.State().Orders, state.Orders)
	found, ok := findCommunication(state.Communications, comm.ID)
	require.True(t, ok)
	require.True(t, comm.CreatedAt.Equal(found.CreatedAt))
}

func TestSupplierSeedOnEmptyStore(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))

	state := store.State()
	require.Len(t, state.Products, 2)
	require.Len(t, state.Customers, 2)
	require.Len(t, state.Orders, 1)
	require.Len(t, state.Communications, 1)
	require.InDelta(t, 230.98, state.Orders[0].TotalAmount, 0.001)
}

func TestSupplierMalformedDocumentFallsBack(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(DataKey, `[]`))

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))
	require.Len(t, store.State().Customers, 2)
}

func TestSupplierSettingsMerge(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(SettingsKey, `{"taxRate":16,"autoConfirmOrders":true}`))

	store := NewStore(adapter, nil)
	require.NoError(t, store.Open(ctx))

	settings := store.State().Settings
	require.InDelta(t, 16.0, settings.TaxRate, 0.001)
	require.True(t, settings.AutoConfirmOrders)
	require.Equal(t, "My Supply Company", settings.CompanyName)
}
