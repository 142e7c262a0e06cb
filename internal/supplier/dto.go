package supplier

import "time"

type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	SKU         string   `json:"sku" validate:"required"`
	Category    string   `json:"category"`
	Price       float64  `json:"price" validate:"gte=0"`
	Cost        float64  `json:"cost" validate:"gte=0"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	MinStock    int      `json:"minStock" validate:"gte=0"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive discontinued"`
}

func (r productRequest) toInput() ProductInput {
	return ProductInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Category:    r.Category,
		Price:       r.Price,
		Cost:        r.Cost,
		Quantity:    r.Quantity,
		MinStock:    r.MinStock,
		Description: r.Description,
		Images:      r.Images,
		Status:      ProductStatus(r.Status),
	}
}

type customerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r customerRequest) toInput() CustomerInput {
	return CustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Company: r.Company,
		Status:  CustomerStatus(r.Status),
	}
}

type orderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type orderRequest struct {
	CustomerID       string             `json:"customerId" validate:"required"`
	Items            []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Shipping         float64            `json:"shipping" validate:"gte=0"`
	ShippingAddress  string             `json:"shippingAddress"`
	Notes            string             `json:"notes"`
	ExpectedDelivery *time.Time         `json:"expectedDelivery"`
}

func (r orderRequest) toInput() OrderInput {
	items := make([]OrderItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	return OrderInput{
		CustomerID:       r.CustomerID,
		Items:            items,
		Shipping:         r.Shipping,
		ShippingAddress:  r.ShippingAddress,
		Notes:            r.Notes,
		ExpectedDelivery: r.ExpectedDelivery,
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

type trackingRequest struct {
	TrackingNumber string `json:"trackingNumber" validate:"required"`
}

type communicationRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=inquiry order_update complaint general"`
	Subject    string `json:"subject" validate:"required"`
	Message    string `json:"message" validate:"required"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type responseRequest struct {
	Response string `json:"response" validate:"required"`
}

type markRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read responded closed"`
}

type settingsRequest struct {
	CompanyName        string  `json:"companyName" validate:"required"`
	ContactEmail       string  `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone       string  `json:"contactPhone"`
	Address            string  `json:"address"`
	BusinessHours      string  `json:"businessHours"`
	ShippingPolicy     string  `json:"shippingPolicy"`
	ReturnPolicy       string  `json:"returnPolicy"`
	TaxRate            float64 `json:"taxRate" validate:"gte=0,lte=100"`
	Currency           string  `json:"currency" validate:"required"`
	AutoConfirmOrders  bool    `json:"autoConfirmOrders"`
	EmailNotifications bool    `json:"emailNotifications"`
}

func (r settingsRequest) toSettings() Settings {
	return Settings{
		CompanyName:        r.CompanyName,
		ContactEmail:       r.ContactEmail,
		ContactPhone:       r.ContactPhone,
		Address:            r.Address,
		BusinessHours:      r.BusinessHours,
		ShippingPolicy:     r.ShippingPolicy,
		ReturnPolicy:       r.ReturnPolicy,
		TaxRate:            r.TaxRate,
		Currency:           r.Currency,
		AutoConfirmOrders:  r.AutoConfirmOrders,
		EmailNotifications: r.EmailNotifications,
	}
}
