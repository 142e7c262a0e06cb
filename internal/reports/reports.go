// Package reports computes the derived views: dashboard statistics and the
// inventory/supplier reports. Everything here is a pure fold over a state
// snapshot; nothing is stored, results are rebuilt on demand.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
)

// DashboardStats summarises the inventory store for the landing view.
type DashboardStats struct {
	TotalProducts   int                 `json:"totalProducts"`
	TotalValue      float64             `json:"totalValue"`
	AvgProductValue float64             `json:"avgProductValue"`
	LowStockCount   int                 `json:"lowStockCount"`
	OutOfStockCount int                 `json:"outOfStockCount"`
	TotalCategories int                 `json:"totalCategories"`
	TotalSuppliers  int                 `json:"totalSuppliers"`
	LowStockItems   []inventory.Product `json:"lowStockItems"`
}

// Dashboard folds the inventory state into the landing-view statistics.
// Low stock uses the settings threshold, not the per-product minimum.
func Dashboard(state inventory.State) DashboardStats {
	stats := DashboardStats{
		TotalProducts:   len(state.Products),
		TotalCategories: len(state.Categories),
		TotalSuppliers:  len(state.Suppliers),
		LowStockItems:   []inventory.Product{},
	}

	total := decimal.Zero
	for _, p := range state.Products {
		total = total.Add(retailValue(p))
		if p.Quantity <= state.Settings.LowStockThreshold {
			stats.LowStockCount++
			stats.LowStockItems = append(stats.LowStockItems, p)
		}
		if p.Quantity == 0 {
			stats.OutOfStockCount++
		}
	}
	stats.TotalValue = total.Round(2).InexactFloat64()
	if stats.TotalProducts > 0 {
		stats.AvgProductValue = total.Div(decimal.NewFromInt(int64(stats.TotalProducts))).Round(2).InexactFloat64()
	}
	return stats
}

// BreakdownRow is one category or supplier slice of the inventory report.
type BreakdownRow struct {
	Name         string  `json:"name"`
	ProductCount int     `json:"productCount"`
	TotalValue   float64 `json:"totalValue"`
}

// InventoryReport is the full report view: valuation, breakdowns and the
// attention lists.
type InventoryReport struct {
	TotalValue        float64             `json:"totalValue"`
	TotalCost         float64             `json:"totalCost"`
	PotentialProfit   float64             `json:"potentialProfit"`
	CategoryBreakdown []BreakdownRow      `json:"categoryBreakdown"`
	SupplierBreakdown []BreakdownRow      `json:"supplierBreakdown"`
	TopProducts       []inventory.Product `json:"topProducts"`
	LowStock          []inventory.Product `json:"lowStock"`
	OutOfStock        []inventory.Product `json:"outOfStock"`
}

// Inventory folds the inventory state into the report view. Breakdown rows
// are sorted by value descending; TopProducts keeps the five highest-value
// products. Low stock here compares against the per-product minimum.
func Inventory(state inventory.State) InventoryReport {
	report := InventoryReport{
		TopProducts: []inventory.Product{},
		LowStock:    []inventory.Product{},
		OutOfStock:  []inventory.Product{},
	}

	value := decimal.Zero
	cost := decimal.Zero
	for _, p := range state.Products {
		value = value.Add(retailValue(p))
		cost = cost.Add(decimal.NewFromFloat(p.Cost).Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.Quantity == 0 {
			report.OutOfStock = append(report.OutOfStock, p)
		} else if p.Quantity <= p.MinStock {
			report.LowStock = append(report.LowStock, p)
		}
	}
	report.TotalValue = value.Round(2).InexactFloat64()
	report.TotalCost = cost.Round(2).InexactFloat64()
	report.PotentialProfit = value.Sub(cost).Round(2).InexactFloat64()

	report.CategoryBreakdown = breakdown(state.Products, func(p inventory.Product) string { return p.Category }, names(state.Categories))
	report.SupplierBreakdown = breakdown(state.Products, func(p inventory.Product) string { return p.Supplier }, supplierNames(state.Suppliers))

	top := make([]inventory.Product, len(state.Products))
	copy(top, state.Products)
	sort.SliceStable(top, func(i, j int) bool {
		return retailValue(top[i]).GreaterThan(retailValue(top[j]))
	})
	if len(top) > 5 {
		top = top[:5]
	}
	report.TopProducts = top
	return report
}

// SupplierDashboard summarises the portal store.
type SupplierDashboard struct {
	TotalProducts        int            `json:"totalProducts"`
	ActiveProducts       int            `json:"activeProducts"`
	TotalCustomers       int            `json:"totalCustomers"`
	TotalOrders          int            `json:"totalOrders"`
	Revenue              float64        `json:"revenue"`
	PendingOrders        int            `json:"pendingOrders"`
	UnreadCommunications int            `json:"unreadCommunications"`
	OrdersByStatus       map[string]int `json:"ordersByStatus"`
}

// Supplier folds the portal state into its dashboard. Revenue counts
// delivered orders only.
func Supplier(state supplier.State) SupplierDashboard {
	stats := SupplierDashboard{
		TotalProducts:  len(state.Products),
		TotalCustomers: len(state.Customers),
		TotalOrders:    len(state.Orders),
		OrdersByStatus: map[string]int{},
	}
	for _, p := range state.Products {
		if p.Status == supplier.ProductActive {
			stats.ActiveProducts++
		}
	}
	revenue := decimal.Zero
	for _, o := range state.Orders {
		stats.OrdersByStatus[string(o.Status)]++
		switch o.Status {
		case supplier.OrderDelivered:
			revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
		case supplier.OrderPending:
			stats.PendingOrders++
		}
	}
	stats.Revenue = revenue.Round(2).InexactFloat64()
	for _, c := range state.Communications {
		if c.Status == supplier.CommUnread {
			stats.UnreadCommunications++
		}
	}
	return stats
}

func breakdown(products []inventory.Product, key func(inventory.Product) string, known []string) []BreakdownRow {
	counts := map[string]int{}
	values := map[string]decimal.Decimal{}
	for _, p := range products {
		k := key(p)
		counts[k]++
		values[k] = values[k].Add(retailValue(p))
	}

	rows := make([]BreakdownRow, 0, len(known))
	for _, name := range known {
		rows = append(rows, BreakdownRow{
			Name:         name,
			ProductCount: counts[name],
			TotalValue:   values[name].Round(2).InexactFloat64(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalValue > rows[j].TotalValue })
	return rows
}

func retailValue(p inventory.Product) decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
}

func names(categories []inventory.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

func supplierNames(suppliers []inventory.Supplier) []string {
	out := make([]string, len(suppliers))
	for i, s := range suppliers {
		out[i] = s.Name
	}
	return out
}
