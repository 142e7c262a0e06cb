package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jaksoftwares/inventory-master/internal/inventory"
)

func fixtureOrder() (inventory.PurchaseOrder, inventory.Supplier, []inventory.Product, inventory.Settings) {
	order := inventory.PurchaseOrder{
		ID:     "po-1",
		Status: inventory.OrderStatusPending,
		Items: []inventory.OrderItem{
			{ProductID: "p1", Quantity: 10, UnitCost: 25.50},
			{ProductID: "missing", Quantity: 2, UnitCost: 5},
		},
		TotalAmount:  265,
		OrderDate:    time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		ExpectedDate: time.Date(2024, time.March, 19, 0, 0, 0, 0, time.UTC),
	}
	sup := inventory.Supplier{ID: "s1", Name: "TechCorp Ltd", Email: "orders@techcorp.example", Phone: "+1-555-0199", Address: "456 Tech Ave"}
	products := []inventory.Product{{ID: "p1", Name: "Wireless Headphones", SKU: "WH-001"}}
	return order, sup, products, inventory.DefaultSettings()
}

func TestBuildPurchaseOrderDocument(t *testing.T) {
	order, sup, products, settings := fixtureOrder()

	doc := BuildPurchaseOrderDocument(order, sup, products, settings)

	require.Equal(t, "PO-po-1", doc.Number)
	require.Equal(t, "03/05/2024", doc.OrderDate)
	require.Len(t, doc.Lines, 2)
	require.Equal(t, "Wireless Headphones", doc.Lines[0].Name)
	require.Equal(t, "$255.00", doc.Lines[0].LineTotal)
	// unknown product keeps the raw id instead of dropping the line
	require.Equal(t, "missing", doc.Lines[1].Name)
	require.Equal(t, "$265.00", doc.Total)
	require.Equal(t, settings.CompanyName, doc.Company.Name)
}

func TestBuildPurchaseOrderEmail(t *testing.T) {
	order, sup, products, settings := fixtureOrder()

	msg := BuildPurchaseOrderEmail(order, sup, products, settings)

	require.Equal(t, sup.Email, msg.To)
	require.Equal(t, "Purchase Order PO-po-1 from Dovepeak Inventory Manager", msg.Subject)
	require.Contains(t, msg.Body, "Dear TechCorp Ltd,")
	require.Contains(t, msg.Body, "1. Wireless Headphones - Quantity: 10 - Unit Price: $25.50")
	require.Contains(t, msg.Body, "Total Amount: $265.00")
	require.Contains(t, msg.Body, "Best regards,\nDovepeak Inventory Manager")
}

func TestMailtoLinkEscapesSpaces(t *testing.T) {
	msg := Message{To: "a@b.example", Subject: "Purchase Order PO-1", Body: "line one\nline two"}

	link := msg.MailtoLink()

	require.True(t, strings.HasPrefix(link, "mailto:a@b.example?subject="))
	require.NotContains(t, link, "+")
	require.Contains(t, link, "Purchase%20Order%20PO-1")
	require.Contains(t, link, "line%20one%0Aline%20two")
}

func TestBuildLowStockEmail(t *testing.T) {
	settings := inventory.DefaultSettings()
	products := []inventory.Product{
		{Name: "Cotton T-Shirt", SKU: "TS-001", Quantity: 8, MinStock: 15},
	}

	msg := BuildLowStockEmail(products, settings)

	require.Equal(t, settings.CompanyEmail, msg.To)
	require.Contains(t, msg.Subject, "1 product(s)")
	require.Contains(t, msg.Body, "Cotton T-Shirt (TS-001): 8 on hand, minimum 15")
}

func TestWriteReportCSV(t *testing.T) {
	report := ReportData{
		Title:   "Inventory Report",
		Columns: []string{"Name", "Quantity"},
		Rows: []map[string]string{
			{"Name": "Wireless Headphones", "Quantity": "45"},
			{"Name": "Cotton T-Shirt", "Quantity": "8"},
		},
		Summary: []SummaryItem{{Label: "Total Value", Value: "$4,724.30"}},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteReportCSV(buf, report))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, []string{"Name", "Quantity"}, records[0])
	require.Equal(t, []string{"Total Value", "$4,724.30"}, records[3])
}

func TestPDFRendererConvert(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(4<<10))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("PDF"))
	}))
	defer srv.Close()

	order, sup, products, settings := fixtureOrder()
	renderer := &PDFRenderer{Endpoint: srv.URL}

	data, err := renderer.RenderPurchaseOrder(context.Background(), BuildPurchaseOrderDocument(order, sup, products, settings))
	require.NoError(t, err)
	require.Equal(t, "PDF", string(data))
	require.Equal(t, "/forms/chromium/convert/html", gotPath)
}

func TestPDFRendererRequiresEndpoint(t *testing.T) {
	renderer := &PDFRenderer{}
	_, err := renderer.RenderReport(context.Background(), ReportData{Title: "x"})
	require.Error(t, err)
}

func TestReportHTMLEscapes(t *testing.T) {
	html := reportHTML(ReportData{
		Title:   "Q1 <Inventory> & \"Stock\"",
		Columns: []string{"Name"},
		Rows:    []map[string]string{{"Name": "<script>"}},
	})

	require.Contains(t, html, "Q1 &lt;Inventory&gt; &amp; &quot;Stock&quot;")
	require.Contains(t, html, "&lt;script&gt;")
	require.NotContains(t, html, "<script>")
}
