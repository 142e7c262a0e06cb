package supplier

import "time"

// SeedState returns the deterministic sample dataset for the supplier
// portal.
func SeedState() State {
	now := time.Now().UTC()
	delivery := now.Add(5 * 24 * time.Hour)

	products := []Product{
		{
			ID: "1", Name: "Premium Wireless Headphones", SKU: "PWH-001", Category: "Electronics",
			Price: 99.99, Cost: 60.00, Quantity: 150, MinStock: 20,
			Description: "High-quality wireless Bluetooth headphones with noise cancellation",
			Images:      []string{}, Status: ProductActive, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "2", Name: "Organic Cotton T-Shirt", SKU: "OCT-001", Category: "Clothing",
			Price: 24.99, Cost: 12.00, Quantity: 200, MinStock: 30,
			Description: "100% organic cotton comfortable t-shirt",
			Images:      []string{}, Status: ProductActive, CreatedAt: now, UpdatedAt: now,
		},
	}

	customers := []Customer{
		{
			ID: "1", Name: "John Smith", Email: "john@example.com", Phone: "+1-555-0123",
			Address: "123 Main St, City, State 12345", Company: "ABC Electronics",
			TotalOrders: 5, TotalSpent: 1250.00, Status: CustomerActive,
			CreatedAt: now, LastOrderDate: &now,
		},
		{
			ID: "2", Name: "Sarah Johnson", Email: "sarah@fashionstore.com", Phone: "+1-555-0456",
			Address: "456 Fashion Ave, City, State 67890", Company: "Fashion Forward Store",
			TotalOrders: 3, TotalSpent: 750.00, Status: CustomerActive,
			CreatedAt: now, LastOrderDate: &now,
		},
	}

	orders := []Order{
		{
			ID: "1", CustomerID: "1", CustomerName: "John Smith", Status: OrderProcessing,
			Items: []OrderItem{
				{ProductID: "1", ProductName: "Premium Wireless Headphones", Quantity: 2, UnitPrice: 99.99, TotalPrice: 199.98},
			},
			Subtotal: 199.98, Tax: 16.00, Shipping: 15.00, TotalAmount: 230.98,
			OrderDate: now, ExpectedDelivery: &delivery,
			ShippingAddress: "123 Main St, City, State 12345",
			Notes:           "Please handle with care",
		},
	}

	communications := []Communication{
		{
			ID: "1", CustomerID: "1", CustomerName: "John Smith", Type: CommInquiry,
			Subject: "Product Availability", Message: "Do you have the wireless headphones in stock?",
			Status: CommUnread, Priority: PriorityMedium, CreatedAt: now,
		},
	}

	return State{
		Products:       products,
		Customers:      customers,
		Orders:         orders,
		Communications: communications,
		Settings:       DefaultSettings(),
	}
}
