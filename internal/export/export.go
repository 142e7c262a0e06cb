// Package export renders report and purchase-order documents for delivery
// outside the system: PDF via Gotenberg, CSV, and plain-text email drafts.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jaksoftwares/inventory-master/internal/currency"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
)

// CompanyInfo is the letterhead block printed on every document.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CompanyFromSettings lifts the letterhead out of the inventory settings.
func CompanyFromSettings(s inventory.Settings) CompanyInfo {
	return CompanyInfo{
		Name:    s.CompanyName,
		Address: s.CompanyAddress,
		Phone:   s.CompanyPhone,
		Email:   s.CompanyEmail,
	}
}

// SummaryItem is one labelled value in a report footer. Kept as a slice so
// the rendered order is stable.
type SummaryItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportData is a generic tabular document: a titled table plus an optional
// summary footer. Rows are keyed by column name.
type ReportData struct {
	Title   string              `json:"title"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
	Summary []SummaryItem       `json:"summary,omitempty"`
	Company CompanyInfo         `json:"company"`
}

// OrderLine is one priced purchase-order row with the product name resolved.
type OrderLine struct {
	Name      string
	Quantity  int
	UnitCost  string
	LineTotal string
}

// PurchaseOrderDocument is the fully resolved purchase order ready for
// rendering: names looked up, money and dates formatted per settings.
type PurchaseOrderDocument struct {
	Number           string
	OrderDate        string
	ExpectedDelivery string
	Supplier         inventory.Supplier
	Lines            []OrderLine
	Total            string
	Company          CompanyInfo
}

// BuildPurchaseOrderDocument resolves a purchase order against the catalog
// and settings. Items whose product no longer exists keep the raw id as the
// line name rather than dropping the priced line.
func BuildPurchaseOrderDocument(order inventory.PurchaseOrder, sup inventory.Supplier, products []inventory.Product, settings inventory.Settings) PurchaseOrderDocument {
	doc := PurchaseOrderDocument{
		Number:           fmt.Sprintf("PO-%s", order.ID),
		OrderDate:        currency.FormatDate(order.OrderDate, settings.DateFormat),
		ExpectedDelivery: currency.FormatDate(order.ExpectedDate, settings.DateFormat),
		Supplier:         sup,
		Company:          CompanyFromSettings(settings),
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	total := decimal.Zero
	for _, item := range order.Items {
		name, ok := names[item.ProductID]
		if !ok {
			name = item.ProductID
		}
		lineTotal := decimal.NewFromFloat(item.UnitCost).Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(lineTotal)
		doc.Lines = append(doc.Lines, OrderLine{
			Name:      name,
			Quantity:  item.Quantity,
			UnitCost:  currency.Format(item.UnitCost, settings.Currency),
			LineTotal: currency.Format(lineTotal.InexactFloat64(), settings.Currency),
		})
	}
	doc.Total = currency.Format(total.InexactFloat64(), settings.Currency)
	return doc
}
