package supplier

// State is the complete supplier-portal document. CurrentSupplier marks the
// portal account selected at login; it is not persisted with the domain
// collections.
type State struct {
	Products        []Product
	Customers       []Customer
	Orders          []Order
	Communications  []Communication
	Settings        Settings
	CurrentSupplier string
}

// Action is one entry of the closed transition vocabulary.
type Action interface {
	isAction()
}

// SetCurrentSupplier records the active portal account.
type SetCurrentSupplier struct{ ID string }

// SetProducts replaces the catalog wholesale.
type SetProducts struct{ Products []Product }

// AddProduct appends a catalog listing.
type AddProduct struct{ Product Product }

// UpdateProduct replaces the listing with the same id, preserving position.
type UpdateProduct struct{ Product Product }

// DeleteProduct removes a listing by id.
type DeleteProduct struct{ ID string }

// SetCustomers replaces the customer collection wholesale.
type SetCustomers struct{ Customers []Customer }

// UpsertCustomer replaces the customer with the same id or appends it.
type UpsertCustomer struct{ Customer Customer }

// UpdateCustomer replaces the customer with the same id.
type UpdateCustomer struct{ Customer Customer }

// DeleteCustomer removes a customer unconditionally; customers have no
// delete guard.
type DeleteCustomer struct{ ID string }

// SetOrders replaces the order collection wholesale.
type SetOrders struct{ Orders []Order }

// AddOrder appends an order.
type AddOrder struct{ Order Order }

// UpdateOrder replaces the order with the same id.
type UpdateOrder struct{ Order Order }

// SetCommunications replaces the message collection wholesale.
type SetCommunications struct{ Communications []Communication }

// AddCommunication appends a message.
type AddCommunication struct{ Communication Communication }

// UpdateCommunication replaces the message with the same id.
type UpdateCommunication struct{ Communication Communication }

// UpdateSettings replaces the settings singleton wholesale.
type UpdateSettings struct{ Settings Settings }

func (SetCurrentSupplier) isAction()  {}
func (SetProducts) isAction()         {}
func (AddProduct) isAction()          {}
func (UpdateProduct) isAction()       {}
func (DeleteProduct) isAction()       {}
func (SetCustomers) isAction()        {}
func (UpsertCustomer) isAction()      {}
func (UpdateCustomer) isAction()      {}
func (DeleteCustomer) isAction()      {}
func (SetOrders) isAction()           {}
func (AddOrder) isAction()            {}
func (UpdateOrder) isAction()         {}
func (SetCommunications) isAction()   {}
func (AddCommunication) isAction()    {}
func (UpdateCommunication) isAction() {}
func (UpdateSettings) isAction()      {}

// Reduce applies one action and returns the next state. Pure and total;
// anything outside the vocabulary returns the state unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetCurrentSupplier:
		state.CurrentSupplier = a.ID
	case SetProducts:
		state.Products = a.Products
	case AddProduct:
		state.Products = appendCopy(state.Products, a.Product)
	case UpdateProduct:
		state.Products = replaceByID(state.Products, a.Product, func(p Product) string { return p.ID })
	case DeleteProduct:
		state.Products = deleteByID(state.Products, a.ID, func(p Product) string { return p.ID })
	case SetCustomers:
		state.Customers = a.Customers
	case UpsertCustomer:
		state.Customers = upsertByID(state.Customers, a.Customer, func(c Customer) string { return c.ID })
	case UpdateCustomer:
		state.Customers = replaceByID(state.Customers, a.Customer, func(c Customer) string { return c.ID })
	case DeleteCustomer:
		state.Customers = deleteByID(state.Customers, a.ID, func(c Customer) string { return c.ID })
	case SetOrders:
		state.Orders = a.Orders
	case AddOrder:
		state.Orders = appendCopy(state.Orders, a.Order)
	case UpdateOrder:
		state.Orders = replaceByID(state.Orders, a.Order, func(o Order) string { return o.ID })
	case SetCommunications:
		state.Communications = a.Communications
	case AddCommunication:
		state.Communications = appendCopy(state.Communications, a.Communication)
	case UpdateCommunication:
		state.Communications = replaceByID(state.Communications, a.Communication, func(c Communication) string { return c.ID })
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
