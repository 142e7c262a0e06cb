package inventory

import (
	"errors"
	"fmt"
	"time"
)

// MovementType enumerates stock movement directions.
type MovementType string

const (
	// MovementIn represents stock entering inventory.
	MovementIn MovementType = "in"
	// MovementOut represents stock leaving inventory.
	MovementOut MovementType = "out"
)

// OrderStatus enumerates the purchase order lifecycle. Completed and
// cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Product is a catalog entry. Category and Supplier reference the owning
// records by name, not by id; renames cascade through the service layer.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"minStock"`
	Supplier    string    `json:"supplier"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category groups products by name.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Supplier is a purchasing counterparty.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// StockMovement is an append-only audit record of a quantity change.
type StockMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	Reference string       `json:"reference"`
	Date      time.Time    `json:"date"`
}

// OrderItem is one purchase order line.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
}

// PurchaseOrder tracks an order placed with a supplier. TotalAmount is
// derived from the items and recomputed only by the service operations that
// change them.
type PurchaseOrder struct {
	ID           string      `json:"id"`
	SupplierID   string      `json:"supplierId"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	OrderDate    time.Time   `json:"orderDate"`
	ExpectedDate time.Time   `json:"expectedDate"`
}

// Settings is the singleton configuration record, replaced wholesale on save.
type Settings struct {
	CompanyName         string `json:"companyName"`
	CompanyEmail        string `json:"companyEmail"`
	CompanyPhone        string `json:"companyPhone"`
	CompanyAddress      string `json:"companyAddress"`
	Currency            string `json:"currency"`
	DateFormat          string `json:"dateFormat"`
	Timezone            string `json:"timezone"`
	LowStockThreshold   int    `json:"lowStockThreshold"`
	EnableNotifications bool   `json:"enableNotifications"`
	EnableEmailAlerts   bool   `json:"enableEmailAlerts"`
	AutoBackup          bool   `json:"autoBackup"`
}

// DefaultSettings returns the settings used before any save.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:         "Dovepeak Inventory Manager",
		CompanyEmail:        "admin@dovepeak.com",
		CompanyPhone:        "+1-555-0123",
		CompanyAddress:      "123 Business Street, City, State 12345",
		Currency:            "USD",
		DateFormat:          "MM/DD/YYYY",
		Timezone:            "America/New_York",
		LowStockThreshold:   10,
		EnableNotifications: true,
		EnableEmailAlerts:   false,
		AutoBackup:          true,
	}
}

// ErrProductNotFound indicates an unknown product id.
var ErrProductNotFound = errors.New("inventory: product not found")

// ErrCategoryNotFound indicates an unknown category id.
var ErrCategoryNotFound = errors.New("inventory: category not found")

// ErrSupplierNotFound indicates an unknown supplier id.
var ErrSupplierNotFound = errors.New("inventory: supplier not found")

// ErrOrderNotFound indicates an unknown purchase order id.
var ErrOrderNotFound = errors.New("inventory: purchase order not found")

// ErrOrderFinalized rejects status changes on completed or cancelled orders.
var ErrOrderFinalized = errors.New("inventory: purchase order already finalized")

// ErrInvalidQuantity indicates a non-positive movement quantity.
var ErrInvalidQuantity = errors.New("inventory: quantity must be positive")

// ErrInUse rejects deleting a category or supplier still referenced by
// products. Returned wrapped in an InUseError carrying the dependent count.
var ErrInUse = errors.New("inventory: record in use")

// InUseError reports how many products block a delete.
type InUseError struct {
	Kind  string
	Name  string
	Count int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("inventory: cannot delete %s %q: referenced by %d product(s)", e.Kind, e.Name, e.Count)
}

// Is makes the error match ErrInUse.
func (e *InUseError) Is(target error) bool { return target == ErrInUse }
