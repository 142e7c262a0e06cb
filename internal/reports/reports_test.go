package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
)

func inventoryState() inventory.State {
	state := inventory.State{Settings: inventory.DefaultSettings()}
	state.Settings.LowStockThreshold = 10
	state.Categories = []inventory.Category{
		{ID: "c1", Name: "Electronics"},
		{ID: "c2", Name: "Books"},
	}
	state.Suppliers = []inventory.Supplier{
		{ID: "s1", Name: "TechCorp"},
		{ID: "s2", Name: "PaperTrail"},
	}
	state.Products = []inventory.Product{
		{ID: "p1", Name: "Headphones", Category: "Electronics", Supplier: "TechCorp", Price: 100, Cost: 60, Quantity: 20, MinStock: 5},
		{ID: "p2", Name: "Novel", Category: "Books", Supplier: "PaperTrail", Price: 10, Cost: 4, Quantity: 8, MinStock: 10},
		{ID: "p3", Name: "Atlas", Category: "Books", Supplier: "PaperTrail", Price: 25, Cost: 15, Quantity: 0, MinStock: 3},
	}
	return state
}

func TestDashboardStats(t *testing.T) {
	stats := Dashboard(inventoryState())

	require.Equal(t, 3, stats.TotalProducts)
	require.Equal(t, 2, stats.TotalCategories)
	require.Equal(t, 2, stats.TotalSuppliers)
	// 100*20 + 10*8 + 25*0
	require.InDelta(t, 2080.0, stats.TotalValue, 0.001)
	require.InDelta(t, 693.33, stats.AvgProductValue, 0.001)
	// threshold 10 catches the novel (8) and the atlas (0)
	require.Equal(t, 2, stats.LowStockCount)
	require.Len(t, stats.LowStockItems, 2)
	require.Equal(t, 1, stats.OutOfStockCount)
}

func TestDashboardEmptyState(t *testing.T) {
	stats := Dashboard(inventory.State{Settings: inventory.DefaultSettings()})

	require.Zero(t, stats.TotalProducts)
	require.Zero(t, stats.TotalValue)
	require.Zero(t, stats.AvgProductValue)
	require.NotNil(t, stats.LowStockItems)
}

func TestInventoryReportValuation(t *testing.T) {
	report := Inventory(inventoryState())

	require.InDelta(t, 2080.0, report.TotalValue, 0.001)
	// 60*20 + 4*8 + 15*0
	require.InDelta(t, 1232.0, report.TotalCost, 0.001)
	require.InDelta(t, 848.0, report.PotentialProfit, 0.001)
}

func TestInventoryReportBreakdownsSorted(t *testing.T) {
	report := Inventory(inventoryState())

	require.Len(t, report.CategoryBreakdown, 2)
	require.Equal(t, "Electronics", report.CategoryBreakdown[0].Name)
	require.InDelta(t, 2000.0, report.CategoryBreakdown[0].TotalValue, 0.001)
	require.Equal(t, "Books", report.CategoryBreakdown[1].Name)
	require.Equal(t, 2, report.CategoryBreakdown[1].ProductCount)

	require.Equal(t, "TechCorp", report.SupplierBreakdown[0].Name)
	require.Equal(t, "PaperTrail", report.SupplierBreakdown[1].Name)
}

func TestInventoryReportAttentionLists(t *testing.T) {
	report := Inventory(inventoryState())

	// per-product minimums here, not the settings threshold
	require.Len(t, report.LowStock, 1)
	require.Equal(t, "Novel", report.LowStock[0].Name)
	require.Len(t, report.OutOfStock, 1)
	require.Equal(t, "Atlas", report.OutOfStock[0].Name)

	require.Len(t, report.TopProducts, 3)
	require.Equal(t, "Headphones", report.TopProducts[0].Name)
}

func TestSupplierDashboard(t *testing.T) {
	state := supplier.State{Settings: supplier.DefaultSettings()}
	state.Products = []supplier.Product{
		{ID: "p1", Status: supplier.ProductActive},
		{ID: "p2", Status: supplier.ProductInactive},
	}
	state.Customers = []supplier.Customer{{ID: "c1"}}
	state.Orders = []supplier.Order{
		{ID: "o1", Status: supplier.OrderDelivered, TotalAmount: 100.50},
		{ID: "o2", Status: supplier.OrderDelivered, TotalAmount: 49.50},
		{ID: "o3", Status: supplier.OrderPending, TotalAmount: 999},
		{ID: "o4", Status: supplier.OrderCancelled, TotalAmount: 10},
	}
	state.Communications = []supplier.Communication{
		{ID: "m1", Status: supplier.CommUnread},
		{ID: "m2", Status: supplier.CommRead},
	}

	stats := Supplier(state)

	require.Equal(t, 2, stats.TotalProducts)
	require.Equal(t, 1, stats.ActiveProducts)
	require.Equal(t, 4, stats.TotalOrders)
	require.InDelta(t, 150.0, stats.Revenue, 0.001)
	require.Equal(t, 1, stats.PendingOrders)
	require.Equal(t, 1, stats.UnreadCommunications)
	require.Equal(t, 2, stats.OrdersByStatus["delivered"])
	require.Equal(t, 1, stats.OrdersByStatus["pending"])
}
