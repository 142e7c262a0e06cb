package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jaksoftwares/inventory-master/internal/currency"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
)

// Message is a composed email draft. Delivery is left to the caller: the
// worker hands drafts to the outbound mail job, the API returns them with a
// mailto link for client-side sending.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailtoLink encodes the draft as a mailto URL.
func (m Message) MailtoLink() string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", m.To, queryEscape(m.Subject), queryEscape(m.Body))
}

// BuildPurchaseOrderEmail composes the covering email for a purchase order.
func BuildPurchaseOrderEmail(order inventory.PurchaseOrder, sup inventory.Supplier, products []inventory.Product, settings inventory.Settings) Message {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", sup.Name)
	b.WriteString("We are pleased to send you the following purchase order:\n\n")
	fmt.Fprintf(&b, "Purchase Order Number: PO-%s\n", order.ID)
	fmt.Fprintf(&b, "Order Date: %s\n", currency.FormatDate(order.OrderDate, settings.DateFormat))
	fmt.Fprintf(&b, "Expected Delivery Date: %s\n\n", currency.FormatDate(order.ExpectedDate, settings.DateFormat))
	b.WriteString("Please confirm receipt of this order and provide an estimated delivery schedule.\n\n")
	b.WriteString("Items Ordered:\n")
	for i, item := range order.Items {
		name, ok := names[item.ProductID]
		if !ok {
			name = item.ProductID
		}
		fmt.Fprintf(&b, "%d. %s - Quantity: %d - Unit Price: %s\n", i+1, name, item.Quantity, currency.Format(item.UnitCost, settings.Currency))
	}
	fmt.Fprintf(&b, "\nTotal Amount: %s\n\n", currency.Format(order.TotalAmount, settings.Currency))
	b.WriteString("Please contact us if you have any questions regarding this order.\n\n")
	fmt.Fprintf(&b, "Best regards,\n%s\n%s\n%s", settings.CompanyName, settings.CompanyPhone, settings.CompanyEmail)

	return Message{
		To:      sup.Email,
		Subject: fmt.Sprintf("Purchase Order PO-%s from %s", order.ID, settings.CompanyName),
		Body:    b.String(),
	}
}

// BuildLowStockEmail composes the alert sent when products fall to or below
// the configured threshold.
func BuildLowStockEmail(products []inventory.Product, settings inventory.Settings) Message {
	var b strings.Builder
	b.WriteString("The following products are at or below the low stock threshold:\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): %d on hand, minimum %d\n", p.Name, p.SKU, p.Quantity, p.MinStock)
	}
	fmt.Fprintf(&b, "\nThreshold: %d\n\n%s", settings.LowStockThreshold, settings.CompanyName)

	return Message{
		To:      settings.CompanyEmail,
		Subject: fmt.Sprintf("Low stock alert: %d product(s) need attention", len(products)),
		Body:    b.String(),
	}
}

// queryEscape matches browser encodeURIComponent closely enough for mailto
// links: spaces become %20, not +.
func queryEscape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
