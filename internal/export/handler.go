package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jaksoftwares/inventory-master/internal/currency"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/platform/httpx"
	"github.com/jaksoftwares/inventory-master/internal/reports"
)

// Handler serves the document-export endpoints: purchase-order PDF and
// email drafts, and the inventory report as PDF or CSV.
type Handler struct {
	logger   *slog.Logger
	store    *inventory.Store
	renderer *PDFRenderer
}

// NewHandler constructs the export handler. The renderer may be nil; PDF
// endpoints then answer 503 while CSV and email keep working.
func NewHandler(logger *slog.Logger, store *inventory.Store, renderer *PDFRenderer) *Handler {
	return &Handler{logger: logger, store: store, renderer: renderer}
}

// MountRoutes registers the export routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/purchase-orders/{id}/pdf", h.purchaseOrderPDF)
	r.Get("/purchase-orders/{id}/email", h.purchaseOrderEmail)
	r.Get("/inventory-report/pdf", h.inventoryReportPDF)
	r.Get("/inventory-report/csv", h.inventoryReportCSV)
}

func (h *Handler) purchaseOrderPDF(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Unavailable", "pdf rendering is not configured")
		return
	}
	state := h.store.State()
	order, sup, err := resolveOrder(state, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}

	doc := BuildPurchaseOrderDocument(order, sup, state.Products, state.Settings)
	pdf, err := h.renderer.RenderPurchaseOrder(r.Context(), doc)
	if err != nil {
		h.logger.Error("purchase order pdf failed", slog.String("order", order.ID), slog.Any("error", err))
		httpx.RespondError(w, r, err)
		return
	}
	servePDF(w, fmt.Sprintf("purchase_order_%s.pdf", order.ID), pdf)
}

func (h *Handler) purchaseOrderEmail(w http.ResponseWriter, r *http.Request) {
	state := h.store.State()
	order, sup, err := resolveOrder(state, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}

	msg := BuildPurchaseOrderEmail(order, sup, state.Products, state.Settings)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"mailto":  msg.MailtoLink(),
	})
}

func (h *Handler) inventoryReportPDF(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Unavailable", "pdf rendering is not configured")
		return
	}
	state := h.store.State()
	pdf, err := h.renderer.RenderReport(r.Context(), inventoryReportData(state))
	if err != nil {
		h.logger.Error("inventory report pdf failed", slog.Any("error", err))
		httpx.RespondError(w, r, err)
		return
	}
	servePDF(w, fmt.Sprintf("inventory_report_%s.pdf", time.Now().UTC().Format("2006-01-02")), pdf)
}

func (h *Handler) inventoryReportCSV(w http.ResponseWriter, r *http.Request) {
	state := h.store.State()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=inventory_report.csv")
	if err := WriteReportCSV(w, inventoryReportData(state)); err != nil {
		h.logger.Error("inventory report csv failed", slog.Any("error", err))
	}
}

// inventoryReportData flattens the derived report into the tabular document
// the renderers consume.
func inventoryReportData(state inventory.State) ReportData {
	report := reports.Inventory(state)
	settings := state.Settings

	data := ReportData{
		Title:   "Inventory Report",
		Columns: []string{"Name", "SKU", "Category", "Quantity", "Unit Price", "Total Value"},
		Company: CompanyFromSettings(settings),
		Summary: []SummaryItem{
			{Label: "Total Value", Value: currency.Format(report.TotalValue, settings.Currency)},
			{Label: "Total Cost", Value: currency.Format(report.TotalCost, settings.Currency)},
			{Label: "Potential Profit", Value: currency.Format(report.PotentialProfit, settings.Currency)},
			{Label: "Low Stock Items", Value: strconv.Itoa(len(report.LowStock))},
			{Label: "Out of Stock Items", Value: strconv.Itoa(len(report.OutOfStock))},
		},
	}
	for _, p := range state.Products {
		data.Rows = append(data.Rows, map[string]string{
			"Name":        p.Name,
			"SKU":         p.SKU,
			"Category":    p.Category,
			"Quantity":    strconv.Itoa(p.Quantity),
			"Unit Price":  currency.Format(p.Price, settings.Currency),
			"Total Value": currency.Format(p.Price*float64(p.Quantity), settings.Currency),
		})
	}
	return data
}

func resolveOrder(state inventory.State, id string) (inventory.PurchaseOrder, inventory.Supplier, error) {
	var order inventory.PurchaseOrder
	found := false
	for _, o := range state.PurchaseOrders {
		if o.ID == id {
			order = o
			found = true
			break
		}
	}
	if !found {
		return inventory.PurchaseOrder{}, inventory.Supplier{}, inventory.ErrOrderNotFound
	}
	for _, s := range state.Suppliers {
		if s.ID == order.SupplierID {
			return order, s, nil
		}
	}
	return inventory.PurchaseOrder{}, inventory.Supplier{}, inventory.ErrSupplierNotFound
}

func servePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	_, _ = w.Write(data)
}
