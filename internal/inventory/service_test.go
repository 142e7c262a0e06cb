package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := NewStore(nil, nil)
	svc := NewService(store, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	counter := 0
	svc.newID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	return svc
}

func TestRenameCategoryCascadesToProducts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Category: "Electronics"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductInput{Name: "Keyboard", Category: "Electronics"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductInput{Name: "Novel", Category: "Books"})
	require.NoError(t, err)

	_, err = svc.UpdateCategory(ctx, cat.ID, CategoryInput{Name: "Gadgets"})
	require.NoError(t, err)

	state := svc.State()
	for _, p := range state.Products {
		require.NotEqual(t, "Electronics", p.Category)
	}
	renamed := 0
	for _, p := range state.Products {
		if p.Category == "Gadgets" {
			renamed++
		}
	}
	require.Equal(t, 2, renamed)
}

func TestDeleteCategoryGuard(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	used, err := svc.CreateCategory(ctx, CategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	empty, err := svc.CreateCategory(ctx, CategoryInput{Name: "Books"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Category: "Electronics"})
	require.NoError(t, err)

	err = svc.DeleteCategory(ctx, used.ID)
	require.ErrorIs(t, err, ErrInUse)
	var inUse *InUseError
	require.ErrorAs(t, err, &inUse)
	require.Equal(t, 1, inUse.Count)
	require.Len(t, svc.State().Categories, 2)

	require.NoError(t, svc.DeleteCategory(ctx, empty.ID))
	require.Len(t, svc.State().Categories, 1)
}

func TestRenameSupplierCascadesToProducts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sup, err := svc.CreateSupplier(ctx, SupplierInput{Name: "TechCorp Ltd"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Supplier: "TechCorp Ltd"})
	require.NoError(t, err)

	_, err = svc.UpdateSupplier(ctx, sup.ID, SupplierInput{Name: "TechCorp International"})
	require.NoError(t, err)
	require.Equal(t, "TechCorp International", svc.State().Products[0].Supplier)

	err = svc.DeleteSupplier(ctx, sup.ID)
	require.ErrorIs(t, err, ErrInUse)
}

func TestCompletePurchaseOrderAppliesItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Quantity: 20, Cost: 60})
	require.NoError(t, err)
	order, err := svc.CreatePurchaseOrder(ctx, OrderInput{
		SupplierID: "s1",
		Items:      []OrderItem{{ProductID: p.ID, Quantity: 5, UnitCost: 10}},
	})
	require.NoError(t, err)
	require.Equal(t, OrderStatusPending, order.Status)
	require.InDelta(t, 50.0, order.TotalAmount, 0.0001)

	completed, err := svc.CompletePurchaseOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, OrderStatusCompleted, completed.Status)

	state := svc.State()
	got, ok := findProduct(state.Products, p.ID)
	require.True(t, ok)
	require.Equal(t, 25, got.Quantity)
	require.InDelta(t, 10.0, got.Cost, 0.0001)

	require.Len(t, state.StockMovements, 1)
	movement := state.StockMovements[0]
	require.Equal(t, MovementIn, movement.Type)
	require.Equal(t, 5, movement.Quantity)
	require.Equal(t, "Purchase Order", movement.Reason)
	require.Contains(t, movement.Reference, order.ID)
}

func TestCompletePurchaseOrderTwiceIsRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Quantity: 20})
	require.NoError(t, err)
	order, err := svc.CreatePurchaseOrder(ctx, OrderInput{
		Items: []OrderItem{{ProductID: p.ID, Quantity: 5, UnitCost: 10}},
	})
	require.NoError(t, err)

	_, err = svc.CompletePurchaseOrder(ctx, order.ID)
	require.NoError(t, err)
	_, err = svc.CompletePurchaseOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderFinalized)

	// No double application.
	got, _ := findProduct(svc.State().Products, p.ID)
	require.Equal(t, 25, got.Quantity)
	require.Len(t, svc.State().StockMovements, 1)
}

func TestCancelPurchaseOrderTouchesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Quantity: 20, Cost: 60})
	require.NoError(t, err)
	order, err := svc.CreatePurchaseOrder(ctx, OrderInput{
		Items: []OrderItem{{ProductID: p.ID, Quantity: 5, UnitCost: 10}},
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelPurchaseOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, OrderStatusCancelled, cancelled.Status)

	got, _ := findProduct(svc.State().Products, p.ID)
	require.Equal(t, 20, got.Quantity)
	require.InDelta(t, 60.0, got.Cost, 0.0001)
	require.Empty(t, svc.State().StockMovements)

	_, err = svc.CompletePurchaseOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderFinalized)
}

func TestCompletePurchaseOrderSkipsMissingProducts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.CreatePurchaseOrder(ctx, OrderInput{
		Items: []OrderItem{{ProductID: "ghost", Quantity: 5, UnitCost: 10}},
	})
	require.NoError(t, err)

	completed, err := svc.CompletePurchaseOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, OrderStatusCompleted, completed.Status)
	require.Empty(t, svc.State().StockMovements)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductInput{Name: "Headphones", Quantity: 30})
	require.NoError(t, err)

	adjusted, err := svc.AdjustStock(ctx, AdjustmentInput{
		ProductID: p.ID, Type: MovementOut, Quantity: 100, Reason: "Damaged",
	})
	require.NoError(t, err)
	require.Equal(t, 0, adjusted.Quantity)

	adjusted, err = svc.AdjustStock(ctx, AdjustmentInput{
		ProductID: p.ID, Type: MovementIn, Quantity: 12, Reason: "Recount",
	})
	require.NoError(t, err)
	require.Equal(t, 12, adjusted.Quantity)

	require.Len(t, svc.State().StockMovements, 2)
	require.Equal(t, 100, svc.State().StockMovements[0].Quantity)

	_, err = svc.AdjustStock(ctx, AdjustmentInput{ProductID: p.ID, Type: MovementIn, Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestImportPartialDocumentLeavesOtherCollections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	_, err = svc.CreateSupplier(ctx, SupplierInput{Name: "TechCorp Ltd"})
	require.NoError(t, err)

	err = svc.Import(ctx, ImportDocument{
		Products: []Product{product("p1", "Imported")},
	})
	require.NoError(t, err)

	state := svc.State()
	require.Len(t, state.Products, 1)
	require.Equal(t, "Imported", state.Products[0].Name)
	require.Len(t, state.Categories, 1)
	require.Len(t, state.Suppliers, 1)
}

func TestExportSnapshotsAllCollections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, ProductInput{Name: "Headphones"})
	require.NoError(t, err)

	doc := svc.Export()
	require.Len(t, doc.Products, 1)
	require.False(t, doc.ExportDate.IsZero())
}

func TestUpdateMissingRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, "missing", ProductInput{})
	require.ErrorIs(t, err, ErrProductNotFound)
	_, err = svc.UpdateCategory(ctx, "missing", CategoryInput{})
	require.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = svc.UpdateSupplier(ctx, "missing", SupplierInput{})
	require.ErrorIs(t, err, ErrSupplierNotFound)
	_, err = svc.CompletePurchaseOrder(ctx, "missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
	require.ErrorIs(t, svc.DeleteProduct(ctx, "missing"), ErrProductNotFound)
}
