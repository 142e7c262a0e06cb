package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// PDFRenderer converts document HTML to PDF through a Gotenberg instance.
type PDFRenderer struct {
	Endpoint string
	Client   *http.Client
}

// RenderReport sends the tabular report to Gotenberg and returns PDF bytes.
func (p *PDFRenderer) RenderReport(ctx context.Context, report ReportData) ([]byte, error) {
	return p.convert(ctx, "report.html", reportHTML(report))
}

// RenderPurchaseOrder renders the purchase-order document to PDF bytes.
func (p *PDFRenderer) RenderPurchaseOrder(ctx context.Context, doc PurchaseOrderDocument) ([]byte, error) {
	return p.convert(ctx, "purchase_order.html", purchaseOrderHTML(doc))
}

func (p *PDFRenderer) convert(ctx context.Context, filename, html string) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pdf renderer not initialised")
	}
	endpoint := strings.TrimRight(p.Endpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("gotenberg endpoint required")
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}
	if err := writer.WriteField("waitDelay", "500"); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("gotenberg response %d: %s", resp.StatusCode, string(data))
	}

	return io.ReadAll(resp.Body)
}

func reportHTML(report ReportData) string {
	var b strings.Builder
	writeHead(&b)
	writeLetterhead(&b, report.Company)

	b.WriteString("<h1>")
	b.WriteString(htmlEscape(report.Title))
	b.WriteString("</h1>")

	b.WriteString("<table><thead><tr>")
	for _, col := range report.Columns {
		b.WriteString("<th>")
		b.WriteString(htmlEscape(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range report.Rows {
		b.WriteString("<tr>")
		for _, col := range report.Columns {
			b.WriteString("<td>")
			b.WriteString(htmlEscape(row[col]))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	if len(report.Summary) > 0 {
		b.WriteString("<section><h2>Summary</h2><table><tbody>")
		for _, item := range report.Summary {
			b.WriteString("<tr><td class=\"metric-label\">")
			b.WriteString(htmlEscape(item.Label))
			b.WriteString("</td><td>")
			b.WriteString(htmlEscape(item.Value))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table></section>")
	}

	b.WriteString("</body></html>")
	return b.String()
}

func purchaseOrderHTML(doc PurchaseOrderDocument) string {
	var b strings.Builder
	writeHead(&b)
	writeLetterhead(&b, doc.Company)

	b.WriteString("<h1>PURCHASE ORDER</h1>")
	b.WriteString("<section><table><tbody>")
	writeLabelRow(&b, "PO Number", doc.Number)
	writeLabelRow(&b, "Order Date", doc.OrderDate)
	writeLabelRow(&b, "Expected Delivery", doc.ExpectedDelivery)
	b.WriteString("</tbody></table></section>")

	b.WriteString("<section><h2>Supplier</h2><p>")
	b.WriteString(htmlEscape(doc.Supplier.Name))
	b.WriteString("<br>")
	b.WriteString(htmlEscape(doc.Supplier.Address))
	b.WriteString("<br>Phone: ")
	b.WriteString(htmlEscape(doc.Supplier.Phone))
	b.WriteString("<br>Email: ")
	b.WriteString(htmlEscape(doc.Supplier.Email))
	b.WriteString("</p></section>")

	b.WriteString("<section><h2>Items</h2><table><thead><tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr></thead><tbody>")
	for _, line := range doc.Lines {
		b.WriteString("<tr><td class=\"metric-label\">")
		b.WriteString(htmlEscape(line.Name))
		b.WriteString("</td><td>")
		b.WriteString(fmt.Sprintf("%d", line.Quantity))
		b.WriteString("</td><td>")
		b.WriteString(htmlEscape(line.UnitCost))
		b.WriteString("</td><td>")
		b.WriteString(htmlEscape(line.LineTotal))
		b.WriteString("</td></tr>")
	}
	b.WriteString("</tbody></table></section>")

	b.WriteString("<p class=\"total\">Total Amount: ")
	b.WriteString(htmlEscape(doc.Total))
	b.WriteString("</p></body></html>")
	return b.String()
}

func writeHead(b *strings.Builder) {
	b.WriteString("<html><head><meta charset=\"utf-8\"><style>")
	b.WriteString("body{font-family:sans-serif;margin:24px;}h1{font-size:20px;}h2{font-size:14px;}table{width:100%;border-collapse:collapse;margin-bottom:16px;}th,td{border:1px solid #ddd;padding:6px;text-align:right;}th{text-align:left;background:#f5f5f5;}section{margin-bottom:24px;}.metric-label{text-align:left;}.letterhead{text-align:center;margin-bottom:24px;}.total{font-weight:bold;text-align:right;}")
	b.WriteString("</style></head><body>")
}

func writeLetterhead(b *strings.Builder, company CompanyInfo) {
	if company.Name == "" {
		return
	}
	b.WriteString("<div class=\"letterhead\"><strong>")
	b.WriteString(htmlEscape(company.Name))
	b.WriteString("</strong><br>")
	b.WriteString(htmlEscape(company.Address))
	b.WriteString("<br>Phone: ")
	b.WriteString(htmlEscape(company.Phone))
	b.WriteString(" | Email: ")
	b.WriteString(htmlEscape(company.Email))
	b.WriteString("</div>")
}

func writeLabelRow(b *strings.Builder, label, value string) {
	b.WriteString("<tr><td class=\"metric-label\">")
	b.WriteString(htmlEscape(label))
	b.WriteString("</td><td>")
	b.WriteString(htmlEscape(value))
	b.WriteString("</td></tr>")
}

func htmlEscape(v string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(v)
}
