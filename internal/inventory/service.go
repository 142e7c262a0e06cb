package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service layers the cross-entity workflows on top of the pure store:
// rename cascades, delete guards, stock adjustments and purchase order
// fulfillment. Every operation runs as a single locked transition, so a
// cascade or fulfillment is never observable half-applied.
type Service struct {
	store  *Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService builds a Service around the given store.
func NewService(store *Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// State exposes a read-only snapshot for views and reports.
func (s *Service) State() State { return s.store.State() }

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	SKU         string
	Category    string
	Price       float64
	Cost        float64
	Quantity    int
	MinStock    int
	Supplier    string
	Description string
}

// CreateProduct appends a new product.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	now := s.now()
	product := Product{
		ID:          s.newID(),
		Name:        input.Name,
		SKU:         input.SKU,
		Category:    input.Category,
		Price:       input.Price,
		Cost:        input.Cost,
		Quantity:    input.Quantity,
		MinStock:    input.MinStock,
		Supplier:    input.Supplier,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Dispatch(ctx, AddProduct{Product: product}); err != nil {
		return Product{}, err
	}
	return product, nil
}

// UpdateProduct replaces the writable fields of an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id string, input ProductInput) (Product, error) {
	var updated Product
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		existing, ok := findProduct(state.Products, id)
		if !ok {
			return nil, ErrProductNotFound
		}
		updated = existing
		updated.Name = input.Name
		updated.SKU = input.SKU
		updated.Category = input.Category
		updated.Price = input.Price
		updated.Cost = input.Cost
		updated.Quantity = input.Quantity
		updated.MinStock = input.MinStock
		updated.Supplier = input.Supplier
		updated.Description = input.Description
		updated.UpdatedAt = s.now()
		return []Action{UpdateProduct{Product: updated}}, nil
	})
	if err != nil {
		return Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a product. Movement history referencing it is kept;
// views render the missing reference as an unknown product.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state State) ([]Action, error) {
		if _, ok := findProduct(state.Products, id); !ok {
			return nil, ErrProductNotFound
		}
		return []Action{DeleteProduct{ID: id}}, nil
	})
}

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name        string
	Description string
}

// CreateCategory appends a new category.
func (s *Service) CreateCategory(ctx context.Context, input CategoryInput) (Category, error) {
	category := Category{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   s.now(),
	}
	if err := s.store.Dispatch(ctx, UpsertCategory{Category: category}); err != nil {
		return Category{}, err
	}
	return category, nil
}

// UpdateCategory edits a category. When the name changes the rename cascades
// to every product referencing the old name, in the same transition as the
// upsert.
func (s *Service) UpdateCategory(ctx context.Context, id string, input CategoryInput) (Category, error) {
	var updated Category
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		existing, ok := findCategory(state.Categories, id)
		if !ok {
			return nil, ErrCategoryNotFound
		}
		updated = existing
		updated.Name = input.Name
		updated.Description = input.Description

		actions := []Action{UpsertCategory{Category: updated}}
		if existing.Name != input.Name {
			actions = append(actions, s.cascadeRename(state.Products,
				func(p Product) bool { return p.Category == existing.Name },
				func(p *Product) { p.Category = input.Name })...)
		}
		return actions, nil
	})
	if err != nil {
		return Category{}, err
	}
	return updated, nil
}

// DeleteCategory removes a category unless any product references it by
// name; the rejection carries the dependent count for the user-facing block.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state State) ([]Action, error) {
		category, ok := findCategory(state.Categories, id)
		if !ok {
			return nil, ErrCategoryNotFound
		}
		count := 0
		for _, p := range state.Products {
			if p.Category == category.Name {
				count++
			}
		}
		if count > 0 {
			return nil, &InUseError{Kind: "category", Name: category.Name, Count: count}
		}
		return []Action{DeleteCategory{ID: id}}, nil
	})
}

// SupplierInput carries the writable supplier fields.
type SupplierInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateSupplier appends a new supplier.
func (s *Service) CreateSupplier(ctx context.Context, input SupplierInput) (Supplier, error) {
	supplier := Supplier{
		ID:        s.newID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: s.now(),
	}
	if err := s.store.Dispatch(ctx, UpsertSupplier{Supplier: supplier}); err != nil {
		return Supplier{}, err
	}
	return supplier, nil
}

// UpdateSupplier edits a supplier, cascading a rename to the products that
// reference the old name.
func (s *Service) UpdateSupplier(ctx context.Context, id string, input SupplierInput) (Supplier, error) {
	var updated Supplier
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		existing, ok := findSupplier(state.Suppliers, id)
		if !ok {
			return nil, ErrSupplierNotFound
		}
		updated = existing
		updated.Name = input.Name
		updated.Email = input.Email
		updated.Phone = input.Phone
		updated.Address = input.Address

		actions := []Action{UpsertSupplier{Supplier: updated}}
		if existing.Name != input.Name {
			actions = append(actions, s.cascadeRename(state.Products,
				func(p Product) bool { return p.Supplier == existing.Name },
				func(p *Product) { p.Supplier = input.Name })...)
		}
		return actions, nil
	})
	if err != nil {
		return Supplier{}, err
	}
	return updated, nil
}

// DeleteSupplier removes a supplier unless any product references it by name.
func (s *Service) DeleteSupplier(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state State) ([]Action, error) {
		supplier, ok := findSupplier(state.Suppliers, id)
		if !ok {
			return nil, ErrSupplierNotFound
		}
		count := 0
		for _, p := range state.Products {
			if p.Supplier == supplier.Name {
				count++
			}
		}
		if count > 0 {
			return nil, &InUseError{Kind: "supplier", Name: supplier.Name, Count: count}
		}
		return []Action{DeleteSupplier{ID: id}}, nil
	})
}

// AdjustmentInput describes a manual stock adjustment.
type AdjustmentInput struct {
	ProductID string
	Type      MovementType
	Quantity  int
	Reason    string
	Reference string
}

// AdjustStock applies a manual in/out adjustment. Stock-out is clamped at
// zero. This is the only quantity change outside order fulfillment; both
// the product update and the audit movement land in one transition.
func (s *Service) AdjustStock(ctx context.Context, input AdjustmentInput) (Product, error) {
	if input.Quantity <= 0 {
		return Product{}, ErrInvalidQuantity
	}
	var adjusted Product
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		product, ok := findProduct(state.Products, input.ProductID)
		if !ok {
			return nil, ErrProductNotFound
		}
		if input.Type == MovementIn {
			product.Quantity += input.Quantity
		} else {
			product.Quantity -= input.Quantity
			if product.Quantity < 0 {
				product.Quantity = 0
			}
		}
		product.UpdatedAt = s.now()
		adjusted = product

		movement := StockMovement{
			ID:        s.newID(),
			ProductID: product.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			Reference: input.Reference,
			Date:      s.now(),
		}
		return []Action{
			UpdateProduct{Product: product},
			AddStockMovement{Movement: movement},
		}, nil
	})
	if err != nil {
		return Product{}, err
	}
	return adjusted, nil
}

// OrderInput describes a new purchase order.
type OrderInput struct {
	SupplierID   string
	Items        []OrderItem
	ExpectedDate time.Time
}

// CreatePurchaseOrder records a pending order. TotalAmount is derived from
// the items here and nowhere else.
func (s *Service) CreatePurchaseOrder(ctx context.Context, input OrderInput) (PurchaseOrder, error) {
	order := PurchaseOrder{
		ID:           s.newID(),
		SupplierID:   input.SupplierID,
		Status:       OrderStatusPending,
		Items:        input.Items,
		TotalAmount:  orderTotal(input.Items),
		OrderDate:    s.now(),
		ExpectedDate: input.ExpectedDate,
	}
	if err := s.store.Dispatch(ctx, AddPurchaseOrder{Order: order}); err != nil {
		return PurchaseOrder{}, err
	}
	return order, nil
}

// CompletePurchaseOrder fulfills a pending order: every line item bumps the
// referenced product quantity, overwrites its cost with the line unit cost
// and appends an inbound movement tagged with the order id. Items whose
// product no longer exists are skipped. Orders already completed or
// cancelled are rejected, so fulfillment can never double-apply.
func (s *Service) CompletePurchaseOrder(ctx context.Context, id string) (PurchaseOrder, error) {
	var completed PurchaseOrder
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		order, ok := findOrder(state.PurchaseOrders, id)
		if !ok {
			return nil, ErrOrderNotFound
		}
		if order.Status != OrderStatusPending {
			return nil, ErrOrderFinalized
		}

		now := s.now()
		var actions []Action
		for _, item := range order.Items {
			product, ok := findProduct(state.Products, item.ProductID)
			if !ok {
				continue
			}
			product.Quantity += item.Quantity
			product.Cost = item.UnitCost
			product.UpdatedAt = now
			actions = append(actions, UpdateProduct{Product: product})
			actions = append(actions, AddStockMovement{Movement: StockMovement{
				ID:        s.newID(),
				ProductID: item.ProductID,
				Type:      MovementIn,
				Quantity:  item.Quantity,
				Reason:    "Purchase Order",
				Reference: fmt.Sprintf("PO-%s", order.ID),
				Date:      now,
			}})
		}
		order.Status = OrderStatusCompleted
		completed = order
		return append(actions, UpdatePurchaseOrder{Order: order}), nil
	})
	if err != nil {
		return PurchaseOrder{}, err
	}
	return completed, nil
}

// CancelPurchaseOrder cancels a pending order. No product or movement is
// touched.
func (s *Service) CancelPurchaseOrder(ctx context.Context, id string) (PurchaseOrder, error) {
	var cancelled PurchaseOrder
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		order, ok := findOrder(state.PurchaseOrders, id)
		if !ok {
			return nil, ErrOrderNotFound
		}
		if order.Status != OrderStatusPending {
			return nil, ErrOrderFinalized
		}
		order.Status = OrderStatusCancelled
		cancelled = order
		return []Action{UpdatePurchaseOrder{Order: order}}, nil
	})
	if err != nil {
		return PurchaseOrder{}, err
	}
	return cancelled, nil
}

// UpdateSettings replaces the settings singleton.
func (s *Service) UpdateSettings(ctx context.Context, settings Settings) error {
	return s.store.Dispatch(ctx, UpdateSettings{Settings: settings})
}

// ExportDocument is the downloadable snapshot of all domain collections.
type ExportDocument struct {
	Products       []Product       `json:"products"`
	Categories     []Category      `json:"categories"`
	Suppliers      []Supplier      `json:"suppliers"`
	StockMovements []StockMovement `json:"stockMovements"`
	PurchaseOrders []PurchaseOrder `json:"purchaseOrders"`
	ExportDate     time.Time       `json:"exportDate"`
}

// Export snapshots the domain collections.
func (s *Service) Export() ExportDocument {
	state := s.store.State()
	return ExportDocument{
		Products:       state.Products,
		Categories:     state.Categories,
		Suppliers:      state.Suppliers,
		StockMovements: state.StockMovements,
		PurchaseOrders: state.PurchaseOrders,
		ExportDate:     s.now(),
	}
}

// ImportDocument accepts a previously exported snapshot. Nil collections
// were absent from the uploaded document and leave the current collection
// untouched.
type ImportDocument struct {
	Products       []Product       `json:"products"`
	Categories     []Category      `json:"categories"`
	Suppliers      []Supplier      `json:"suppliers"`
	StockMovements []StockMovement `json:"stockMovements"`
	PurchaseOrders []PurchaseOrder `json:"purchaseOrders"`
}

// Import wholesale-replaces each collection present in the document.
func (s *Service) Import(ctx context.Context, doc ImportDocument) error {
	var actions []Action
	if doc.Products != nil {
		actions = append(actions, SetProducts{Products: doc.Products})
	}
	if doc.Categories != nil {
		actions = append(actions, SetCategories{Categories: doc.Categories})
	}
	if doc.Suppliers != nil {
		actions = append(actions, SetSuppliers{Suppliers: doc.Suppliers})
	}
	if doc.StockMovements != nil {
		actions = append(actions, SetStockMovements{Movements: doc.StockMovements})
	}
	if doc.PurchaseOrders != nil {
		actions = append(actions, SetPurchaseOrders{Orders: doc.PurchaseOrders})
	}
	return s.store.Dispatch(ctx, actions...)
}

// Reset clears persisted data and reinstalls sample data.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

func (s *Service) cascadeRename(products []Product, match func(Product) bool, apply func(*Product)) []Action {
	var actions []Action
	now := s.now()
	for _, product := range products {
		if !match(product) {
			continue
		}
		apply(&product)
		product.UpdatedAt = now
		actions = append(actions, UpdateProduct{Product: product})
	}
	return actions
}

func orderTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitCost
	}
	return total
}

func findProduct(list []Product, id string) (Product, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func findCategory(list []Category, id string) (Category, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func findSupplier(list []Supplier, id string) (Supplier, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return Supplier{}, false
}

func findOrder(list []PurchaseOrder, id string) (PurchaseOrder, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return PurchaseOrder{}, false
}
