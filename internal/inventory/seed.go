package inventory

import "time"

// SeedState returns the deterministic sample dataset installed on first run
// or after the persisted document is discarded. Fixed ids keep reloads
// stable.
func SeedState() State {
	now := time.Now().UTC()

	categories := []Category{
		{ID: "1", Name: "Electronics", Description: "Electronic devices and accessories", CreatedAt: now},
		{ID: "2", Name: "Clothing", Description: "Apparel and fashion items", CreatedAt: now},
		{ID: "3", Name: "Books", Description: "Books and publications", CreatedAt: now},
	}

	suppliers := []Supplier{
		{ID: "1", Name: "TechCorp Ltd", Email: "orders@techcorp.com", Phone: "+1-555-0123", Address: "123 Tech Street, Silicon Valley", CreatedAt: now},
		{ID: "2", Name: "Fashion Forward", Email: "supply@fashionforward.com", Phone: "+1-555-0456", Address: "456 Fashion Ave, New York", CreatedAt: now},
	}

	products := []Product{
		{
			ID: "1", Name: "Wireless Headphones", SKU: "WH-001", Category: "Electronics",
			Price: 99.99, Cost: 60.00, Quantity: 45, MinStock: 10, Supplier: "TechCorp Ltd",
			Description: "High-quality wireless Bluetooth headphones", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "2", Name: "Cotton T-Shirt", SKU: "TS-001", Category: "Clothing",
			Price: 24.99, Cost: 12.00, Quantity: 8, MinStock: 15, Supplier: "Fashion Forward",
			Description: "100% cotton comfortable t-shirt", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "3", Name: "Programming Guide", SKU: "BK-001", Category: "Books",
			Price: 39.99, Cost: 20.00, Quantity: 25, MinStock: 5, Supplier: "TechCorp Ltd",
			Description: "Complete guide to modern programming", CreatedAt: now, UpdatedAt: now,
		},
	}

	return State{
		Products:   products,
		Categories: categories,
		Suppliers:  suppliers,
		Settings:   DefaultSettings(),
	}
}
