package supplier

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service layers the portal workflows on the pure store. Delivery is the
// one operation allowed to mutate customer aggregates, and it does so in
// the same transition as the order status change.
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

// SetCurrentSupplier records the active portal account.
func (s *Service) SetCurrentSupplier(ctx context.Context, id string) error {
	return s.store.Dispatch(ctx, SetCurrentSupplier{ID: id})
}

// ProductInput carries the writable catalog fields.
type ProductInput struct {
	Name        string
	SKU         string
	Category    string
	Price       float64
	Cost        float64
	Quantity    int
	MinStock    int
	Description string
	Images      []string
	Status      ProductStatus
}

// CreateProduct appends a catalog listing.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	now := s.now()
	status := input.Status
	if status == "" {
		status = ProductActive
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}
	product := Product{
		ID:          s.newID(),
		Name:        input.Name,
		SKU:         input.SKU,
		Category:    input.Category,
		Price:       input.Price,
		Cost:        input.Cost,
		Quantity:    input.Quantity,
		MinStock:    input.MinStock,
		Description: input.Description,
		Images:      images,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Dispatch(ctx, AddProduct{Product: product}); err != nil {
		return Product{}, err
	}
	return product, nil
}

// UpdateProduct replaces the writable fields of a listing.
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
		updated.Description = input.Description
		if input.Images != nil {
			updated.Images = input.Images
		}
		if input.Status != "" {
			updated.Status = input.Status
		}
		updated.UpdatedAt = s.now()
		return []Action{UpdateProduct{Product: updated}}, nil
	})
	if err != nil {
		return Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a listing by id.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state State) ([]Action, error) {
		if _, ok := findProduct(state.Products, id); !ok {
			return nil, ErrProductNotFound
		}
		return []Action{DeleteProduct{ID: id}}, nil
	})
}

// CustomerInput carries the writable customer fields.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Company string
	Status  CustomerStatus
}

// CreateCustomer appends a customer with zeroed aggregates.
func (s *Service) CreateCustomer(ctx context.Context, input CustomerInput) (Customer, error) {
	status := input.Status
	if status == "" {
		status = CustomerActive
	}
	customer := Customer{
		ID:        s.newID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Company:   input.Company,
		Status:    status,
		CreatedAt: s.now(),
	}
	if err := s.store.Dispatch(ctx, UpsertCustomer{Customer: customer}); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// UpdateCustomer edits contact fields. The running aggregates are not
// writable here; only delivery changes them.
func (s *Service) UpdateCustomer(ctx context.Context, id string, input CustomerInput) (Customer, error) {
	var updated Customer
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		existing, ok := findCustomer(state.Customers, id)
		if !ok {
			return nil, ErrCustomerNotFound
		}
		updated = existing
		updated.Name = input.Name
		updated.Email = input.Email
		updated.Phone = input.Phone
		updated.Address = input.Address
		updated.Company = input.Company
		if input.Status != "" {
			updated.Status = input.Status
		}
		return []Action{UpdateCustomer{Customer: updated}}, nil
	})
	if err != nil {
		return Customer{}, err
	}
	return updated, nil
}

// DeleteCustomer removes a customer unconditionally. Orders referencing the
// customer keep their stored name and render as unknown where it matters.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state State) ([]Action, error) {
		if _, ok := findCustomer(state.Customers, id); !ok {
			return nil, ErrCustomerNotFound
		}
		return []Action{DeleteCustomer{ID: id}}, nil
	})
}

// OrderInput describes a new customer order. Line totals and the order
// totals are derived here and nowhere else.
type OrderInput struct {
	CustomerID       string
	Items            []OrderItemInput
	Shipping         float64
	ShippingAddress  string
	Notes            string
	ExpectedDelivery *time.Time
}

// OrderItemInput is one requested line.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CreateOrder records a new order for a known customer. The tax amount is
// derived from the settings tax rate. When auto-confirm is enabled in
// settings the order starts confirmed instead of pending.
func (s *Service) CreateOrder(ctx context.Context, input OrderInput) (Order, error) {
	var created Order
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		customer, ok := findCustomer(state.Customers, input.CustomerID)
		if !ok {
			return nil, ErrCustomerNotFound
		}

		items := make([]OrderItem, 0, len(input.Items))
		subtotal := decimal.Zero
		for _, in := range input.Items {
			name := in.ProductID
			if p, ok := findProduct(state.Products, in.ProductID); ok {
				name = p.Name
			}
			lineTotal := decimal.NewFromFloat(in.UnitPrice).Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
			subtotal = subtotal.Add(lineTotal)
			items = append(items, OrderItem{
				ProductID:   in.ProductID,
				ProductName: name,
				Quantity:    in.Quantity,
				UnitPrice:   in.UnitPrice,
				TotalPrice:  lineTotal.InexactFloat64(),
			})
		}

		tax := subtotal.Mul(decimal.NewFromFloat(state.Settings.TaxRate)).Div(decimal.NewFromInt(100)).Round(2)
		shipping := decimal.NewFromFloat(input.Shipping).Round(2)
		total := subtotal.Add(tax).Add(shipping)

		status := OrderPending
		if state.Settings.AutoConfirmOrders {
			status = OrderConfirmed
		}

		created = Order{
			ID:               s.newID(),
			CustomerID:       customer.ID,
			CustomerName:     customer.Name,
			Status:           status,
			Items:            items,
			Subtotal:         subtotal.InexactFloat64(),
			Tax:              tax.InexactFloat64(),
			Shipping:         shipping.InexactFloat64(),
			TotalAmount:      total.InexactFloat64(),
			OrderDate:        s.now(),
			ExpectedDelivery: input.ExpectedDelivery,
			ShippingAddress:  input.ShippingAddress,
			Notes:            input.Notes,
		}
		return []Action{AddOrder{Order: created}}, nil
	})
	if err != nil {
		return Order{}, err
	}
	return created, nil
}

// UpdateOrderStatus moves an order through the status machine. Moving into
// delivered also bumps the customer aggregates, in the same transition, so
// the combined effect is one logical transaction.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, next OrderStatus) (Order, error) {
	var updated Order
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		order, ok := findOrder(state.Orders, id)
		if !ok {
			return nil, ErrOrderNotFound
		}
		if !ValidTransition(order.Status, next) {
			return nil, ErrInvalidTransition
		}

		order.Status = next
		updated = order
		actions := []Action{UpdateOrder{Order: order}}

		if next == OrderDelivered {
			if customer, ok := findCustomer(state.Customers, order.CustomerID); ok {
				now := s.now()
				customer.TotalOrders++
				customer.TotalSpent = decimal.NewFromFloat(customer.TotalSpent).
					Add(decimal.NewFromFloat(order.TotalAmount)).Round(2).InexactFloat64()
				customer.LastOrderDate = &now
				actions = append(actions, UpdateCustomer{Customer: customer})
			}
		}
		return actions, nil
	})
	if err != nil {
		return Order{}, err
	}
	return updated, nil
}

// SetTrackingNumber records the shipment tracking reference.
func (s *Service) SetTrackingNumber(ctx context.Context, id, tracking string) (Order, error) {
	var updated Order
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		order, ok := findOrder(state.Orders, id)
		if !ok {
			return nil, ErrOrderNotFound
		}
		order.TrackingNumber = tracking
		updated = order
		return []Action{UpdateOrder{Order: order}}, nil
	})
	if err != nil {
		return Order{}, err
	}
	return updated, nil
}

// CommunicationInput describes an incoming customer message.
type CommunicationInput struct {
	CustomerID string
	Type       CommunicationType
	Subject    string
	Message    string
	Priority   Priority
}

// AddCommunication records an incoming message as unread.
func (s *Service) AddCommunication(ctx context.Context, input CommunicationInput) (Communication, error) {
	var created Communication
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		name := input.CustomerID
		if customer, ok := findCustomer(state.Customers, input.CustomerID); ok {
			name = customer.Name
		}
		priority := input.Priority
		if priority == "" {
			priority = PriorityMedium
		}
		created = Communication{
			ID:           s.newID(),
			CustomerID:   input.CustomerID,
			CustomerName: name,
			Type:         input.Type,
			Subject:      input.Subject,
			Message:      input.Message,
			Status:       CommUnread,
			Priority:     priority,
			CreatedAt:    s.now(),
		}
		return []Action{AddCommunication{Communication: created}}, nil
	})
	if err != nil {
		return Communication{}, err
	}
	return created, nil
}

// Respond records the reply and stamps the thread responded.
func (s *Service) Respond(ctx context.Context, id, response string) (Communication, error) {
	var updated Communication
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		comm, ok := findCommunication(state.Communications, id)
		if !ok {
			return nil, ErrCommunicationNotFound
		}
		now := s.now()
		comm.Response = response
		comm.Status = CommResponded
		comm.RespondedAt = &now
		updated = comm
		return []Action{UpdateCommunication{Communication: comm}}, nil
	})
	if err != nil {
		return Communication{}, err
	}
	return updated, nil
}

// MarkCommunication moves a thread to read or closed.
func (s *Service) MarkCommunication(ctx context.Context, id string, status CommunicationStatus) (Communication, error) {
	var updated Communication
	err := s.store.Update(ctx, func(state State) ([]Action, error) {
		comm, ok := findCommunication(state.Communications, id)
		if !ok {
			return nil, ErrCommunicationNotFound
		}
		comm.Status = status
		updated = comm
		return []Action{UpdateCommunication{Communication: comm}}, nil
	})
	if err != nil {
		return Communication{}, err
	}
	return updated, nil
}

// UpdateSettings replaces the settings singleton.
func (s *Service) UpdateSettings(ctx context.Context, settings Settings) error {
	return s.store.Dispatch(ctx, UpdateSettings{Settings: settings})
}

// Reset clears persisted data and reinstalls sample data.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

func findProduct(list []Product, id string) (Product, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func findCustomer(list []Customer, id string) (Customer, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

func findOrder(list []Order, id string) (Order, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func findCommunication(list []Communication, id string) (Communication, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return Communication{}, false
}
