// Package supplier implements the supplier-portal state store: the catalog
// offered to customers, the customers themselves, their orders and the
// message threads. It is deliberately independent from the inventory store;
// the two product types are similar shapes but never shared.
package supplier

import (
	"errors"
	"time"
)

// ProductStatus enumerates catalog listing states.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
)

// CustomerStatus enumerates customer account states.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// OrderStatus enumerates the customer order lifecycle. The progression is
// linear; cancelled is reachable only from pending; delivered and cancelled
// are terminal.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidTransition reports whether an order may move from one status to the
// next.
func ValidTransition(from, to OrderStatus) bool {
	switch from {
	case OrderPending:
		return to == OrderConfirmed || to == OrderCancelled
	case OrderConfirmed:
		return to == OrderProcessing
	case OrderProcessing:
		return to == OrderShipped
	case OrderShipped:
		return to == OrderDelivered
	default:
		return false
	}
}

// CommunicationType enumerates message categories.
type CommunicationType string

const (
	CommInquiry     CommunicationType = "inquiry"
	CommOrderUpdate CommunicationType = "order_update"
	CommComplaint   CommunicationType = "complaint"
	CommGeneral     CommunicationType = "general"
)

// CommunicationStatus enumerates the message handling states.
type CommunicationStatus string

const (
	CommUnread    CommunicationStatus = "unread"
	CommRead      CommunicationStatus = "read"
	CommResponded CommunicationStatus = "responded"
	CommClosed    CommunicationStatus = "closed"
)

// Priority enumerates message priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Product is a catalog listing offered to customers.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	SKU         string        `json:"sku"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Cost        float64       `json:"cost"`
	Quantity    int           `json:"quantity"`
	MinStock    int           `json:"minStock"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Customer carries the stored aggregates TotalOrders/TotalSpent, which only
// the delivery operation may change.
type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	Company       string         `json:"company"`
	TotalOrders   int            `json:"totalOrders"`
	TotalSpent    float64        `json:"totalSpent"`
	Status        CustomerStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastOrderDate *time.Time     `json:"lastOrderDate,omitempty"`
}

// OrderItem is one line of a customer order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Order is a customer order. Subtotal, Tax and TotalAmount are derived from
// the items and the settings tax rate, recomputed only by the operations
// that change them.
type Order struct {
	ID               string      `json:"id"`
	CustomerID       string      `json:"customerId"`
	CustomerName     string      `json:"customerName"`
	Status           OrderStatus `json:"status"`
	Items            []OrderItem `json:"items"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Shipping         float64     `json:"shipping"`
	TotalAmount      float64     `json:"totalAmount"`
	OrderDate        time.Time   `json:"orderDate"`
	ExpectedDelivery *time.Time  `json:"expectedDelivery,omitempty"`
	ShippingAddress  string      `json:"shippingAddress"`
	Notes            string      `json:"notes,omitempty"`
	TrackingNumber   string      `json:"trackingNumber,omitempty"`
}

// Communication is one customer message and its optional response.
type Communication struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	CustomerName string              `json:"customerName"`
	Type         CommunicationType   `json:"type"`
	Subject      string              `json:"subject"`
	Message      string              `json:"message"`
	Response     string              `json:"response,omitempty"`
	Status       CommunicationStatus `json:"status"`
	Priority     Priority            `json:"priority"`
	CreatedAt    time.Time           `json:"createdAt"`
	RespondedAt  *time.Time          `json:"respondedAt,omitempty"`
}

// Settings is the supplier-portal configuration singleton.
type Settings struct {
	CompanyName        string  `json:"companyName"`
	ContactEmail       string  `json:"contactEmail"`
	ContactPhone       string  `json:"contactPhone"`
	Address            string  `json:"address"`
	BusinessHours      string  `json:"businessHours"`
	ShippingPolicy     string  `json:"shippingPolicy"`
	ReturnPolicy       string  `json:"returnPolicy"`
	TaxRate            float64 `json:"taxRate"`
	Currency           string  `json:"currency"`
	AutoConfirmOrders  bool    `json:"autoConfirmOrders"`
	EmailNotifications bool    `json:"emailNotifications"`
}

// DefaultSettings returns the settings used before any save.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:        "My Supply Company",
		ContactEmail:       "contact@mysupply.com",
		ContactPhone:       "+1-555-0123",
		Address:            "123 Supply Street, Business City, BC 12345",
		BusinessHours:      "Mon-Fri 9AM-6PM",
		ShippingPolicy:     "Standard shipping 3-5 business days",
		ReturnPolicy:       "30-day return policy",
		TaxRate:            8.5,
		Currency:           "USD",
		AutoConfirmOrders:  false,
		EmailNotifications: true,
	}
}

// ErrProductNotFound indicates an unknown product id.
var ErrProductNotFound = errors.New("supplier: product not found")

// ErrCustomerNotFound indicates an unknown customer id.
var ErrCustomerNotFound = errors.New("supplier: customer not found")

// ErrOrderNotFound indicates an unknown order id.
var ErrOrderNotFound = errors.New("supplier: order not found")

// ErrCommunicationNotFound indicates an unknown communication id.
var ErrCommunicationNotFound = errors.New("supplier: communication not found")

// ErrInvalidTransition rejects an order status change the state machine
// does not allow.
var ErrInvalidTransition = errors.New("supplier: invalid order status transition")
