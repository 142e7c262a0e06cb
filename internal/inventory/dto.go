package inventory

import "time"

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	SKU         string  `json:"sku" validate:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinStock    int     `json:"minStock" validate:"gte=0"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
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
		Supplier:    r.Supplier,
		Description: r.Description,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type supplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type adjustmentRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
	Reference string `json:"reference"`
}

type orderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitCost  float64 `json:"unitCost" validate:"gte=0"`
}

type orderRequest struct {
	SupplierID   string             `json:"supplierId" validate:"required"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	ExpectedDate time.Time          `json:"expectedDate"`
}

func (r orderRequest) toInput() OrderInput {
	items := make([]OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = OrderItem{ProductID: item.ProductID, Quantity: item.Quantity, UnitCost: item.UnitCost}
	}
	return OrderInput{SupplierID: r.SupplierID, Items: items, ExpectedDate: r.ExpectedDate}
}

type settingsRequest struct {
	CompanyName         string `json:"companyName" validate:"required"`
	CompanyEmail        string `json:"companyEmail" validate:"omitempty,email"`
	CompanyPhone        string `json:"companyPhone"`
	CompanyAddress      string `json:"companyAddress"`
	Currency            string `json:"currency" validate:"required"`
	DateFormat          string `json:"dateFormat" validate:"required"`
	Timezone            string `json:"timezone" validate:"required"`
	LowStockThreshold   int    `json:"lowStockThreshold" validate:"gte=0"`
	EnableNotifications bool   `json:"enableNotifications"`
	EnableEmailAlerts   bool   `json:"enableEmailAlerts"`
	AutoBackup          bool   `json:"autoBackup"`
}

func (r settingsRequest) toSettings() Settings {
	return Settings{
		CompanyName:         r.CompanyName,
		CompanyEmail:        r.CompanyEmail,
		CompanyPhone:        r.CompanyPhone,
		CompanyAddress:      r.CompanyAddress,
		Currency:            r.Currency,
		DateFormat:          r.DateFormat,
		Timezone:            r.Timezone,
		LowStockThreshold:   r.LowStockThreshold,
		EnableNotifications: r.EnableNotifications,
		EnableEmailAlerts:   r.EnableEmailAlerts,
		AutoBackup:          r.AutoBackup,
	}
}
