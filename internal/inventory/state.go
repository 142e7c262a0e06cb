package inventory

// State is the complete inventory document. A transition produces a new
// State value; collections are copied on write and never mutated in place.
type State struct {
	Products       []Product
	Categories     []Category
	Suppliers      []Supplier
	StockMovements []StockMovement
	PurchaseOrders []PurchaseOrder
	Settings       Settings
}

// Action is one entry of the closed transition vocabulary understood by the
// reducer. Implementations are plain payload structs.
type Action interface {
	isAction()
}

// SetProducts replaces the product collection wholesale. Used by the
// persistence adapter on load and by import.
type SetProducts struct{ Products []Product }

// AddProduct appends a product.
type AddProduct struct{ Product Product }

// UpdateProduct replaces the product with the same id, preserving position.
type UpdateProduct struct{ Product Product }

// DeleteProduct removes a product by id.
type DeleteProduct struct{ ID string }

// SetCategories replaces the category collection wholesale.
type SetCategories struct{ Categories []Category }

// UpsertCategory replaces the category with the same id or appends it.
// Serves both the add and edit call sites.
type UpsertCategory struct{ Category Category }

// DeleteCategory removes a category by id. The referential guard lives in
// the service layer; the reducer removes blindly.
type DeleteCategory struct{ ID string }

// SetSuppliers replaces the supplier collection wholesale.
type SetSuppliers struct{ Suppliers []Supplier }

// UpsertSupplier replaces the supplier with the same id or appends it.
type UpsertSupplier struct{ Supplier Supplier }

// DeleteSupplier removes a supplier by id.
type DeleteSupplier struct{ ID string }

// SetStockMovements replaces the movement log wholesale.
type SetStockMovements struct{ Movements []StockMovement }

// AddStockMovement appends to the movement log. The log is append-only;
// there is no update or delete action.
type AddStockMovement struct{ Movement StockMovement }

// SetPurchaseOrders replaces the purchase order collection wholesale.
type SetPurchaseOrders struct{ Orders []PurchaseOrder }

// AddPurchaseOrder appends a purchase order.
type AddPurchaseOrder struct{ Order PurchaseOrder }

// UpdatePurchaseOrder replaces the order with the same id.
type UpdatePurchaseOrder struct{ Order PurchaseOrder }

// UpdateSettings replaces the settings singleton wholesale.
type UpdateSettings struct{ Settings Settings }

func (SetProducts) isAction()         {}
func (AddProduct) isAction()          {}
func (UpdateProduct) isAction()       {}
func (DeleteProduct) isAction()       {}
func (SetCategories) isAction()       {}
func (UpsertCategory) isAction()      {}
func (DeleteCategory) isAction()      {}
func (SetSuppliers) isAction()        {}
func (UpsertSupplier) isAction()      {}
func (DeleteSupplier) isAction()      {}
func (SetStockMovements) isAction()   {}
func (AddStockMovement) isAction()    {}
func (SetPurchaseOrders) isAction()   {}
func (AddPurchaseOrder) isAction()    {}
func (UpdatePurchaseOrder) isAction() {}
func (UpdateSettings) isAction()      {}

// Reduce applies one action to the state and returns the next state. It is
// pure and total: every action in the vocabulary succeeds, and anything else
// returns the state unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetProducts:
		state.Products = a.Products
	case AddProduct:
		state.Products = appendCopy(state.Products, a.Product)
	case UpdateProduct:
		state.Products = replaceByID(state.Products, a.Product, func(p Product) string { return p.ID })
	case DeleteProduct:
		state.Products = deleteByID(state.Products, a.ID, func(p Product) string { return p.ID })
	case SetCategories:
		state.Categories = a.Categories
	case UpsertCategory:
		state.Categories = upsertByID(state.Categories, a.Category, func(c Category) string { return c.ID })
	case DeleteCategory:
		state.Categories = deleteByID(state.Categories, a.ID, func(c Category) string { return c.ID })
	case SetSuppliers:
		state.Suppliers = a.Suppliers
	case UpsertSupplier:
		state.Suppliers = upsertByID(state.Suppliers, a.Supplier, func(s Supplier) string { return s.ID })
	case DeleteSupplier:
		state.Suppliers = deleteByID(state.Suppliers, a.ID, func(s Supplier) string { return s.ID })
	case SetStockMovements:
		state.StockMovements = a.Movements
	case AddStockMovement:
		state.StockMovements = appendCopy(state.StockMovements, a.Movement)
	case SetPurchaseOrders:
		state.PurchaseOrders = a.Orders
	case AddPurchaseOrder:
		state.PurchaseOrders = appendCopy(state.PurchaseOrders, a.Order)
	case UpdatePurchaseOrder:
		state.PurchaseOrders = replaceByID(state.PurchaseOrders, a.Order, func(o PurchaseOrder) string { return o.ID })
	case UpdateSettings:
		state.Settings = a.Settings
	}
	return state
}

func appendCopy[T any](list []T, item T) []T {
	next := make([]T, len(list), len(list)+1)
	copy(next, list)
	return append(next, item)
}

func replaceByID[T any](list []T, item T, id func(T) string) []T {
	next := make([]T, len(list))
	copy(next, list)
	for i := range next {
		if id(next[i]) == id(item) {
			next[i] = item
		}
	}
	return next
}

func upsertByID[T any](list []T, item T, id func(T) string) []T {
	for i := range list {
		if id(list[i]) == id(item) {
			next := make([]T, len(list))
			copy(next, list)
			next[i] = item
			return next
		}
	}
	return appendCopy(list, item)
}

func deleteByID[T any](list []T, target string, id func(T) string) []T {
	next := make([]T, 0, len(list))
	for _, item := range list {
		if id(item) != target {
			next = append(next, item)
		}
	}
	return next
}
