package inventory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jaksoftwares/inventory-master/internal/currency"
	"github.com/jaksoftwares/inventory-master/internal/platform/httpx"
)

// Handler wires the inventory HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the inventory handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers the inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/state", h.state)

	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)

	r.Get("/categories", h.listCategories)
	r.Post("/categories", h.createCategory)
	r.Put("/categories/{id}", h.updateCategory)
	r.Delete("/categories/{id}", h.deleteCategory)

	r.Get("/suppliers", h.listSuppliers)
	r.Post("/suppliers", h.createSupplier)
	r.Put("/suppliers/{id}", h.updateSupplier)
	r.Delete("/suppliers/{id}", h.deleteSupplier)

	r.Get("/movements", h.listMovements)
	r.Post("/movements", h.adjustStock)

	r.Get("/orders", h.listOrders)
	r.Post("/orders", h.createOrder)
	r.Post("/orders/{id}/complete", h.completeOrder)
	r.Post("/orders/{id}/cancel", h.cancelOrder)

	r.Get("/settings", h.settings)
	r.Put("/settings", h.updateSettings)
	r.Get("/settings/options", h.settingsOptions)

	r.Get("/data/export", h.exportData)
	r.Post("/data/import", h.importData)
	r.Post("/data/reset", h.reset)
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State())
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	product, err := h.service.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	product, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	category, err := h.service.CreateCategory(r.Context(), CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	category, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Suppliers)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if !h.decode(w, r, &req) {
		return
	}
	sup, err := h.service.CreateSupplier(r.Context(), SupplierInput{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sup)
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if !h.decode(w, r, &req) {
		return
	}
	sup, err := h.service.UpdateSupplier(r.Context(), chi.URLParam(r, "id"), SupplierInput{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sup)
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMovements(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().StockMovements)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	product, err := h.service.AdjustStock(r.Context(), AdjustmentInput{
		ProductID: req.ProductID,
		Type:      MovementType(req.Type),
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		Reference: req.Reference,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().PurchaseOrders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !h.decode(w, r, &req) {
		return
	}
	order, err := h.service.CreatePurchaseOrder(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.CompletePurchaseOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.CancelPurchaseOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !currency.Supported(req.Currency) {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "unsupported currency code")
		return
	}
	if err := h.service.UpdateSettings(r.Context(), req.toSettings()); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.State().Settings)
}

// settingsOptions lists the currencies, date formats and timezones the
// settings form can choose from.
func (h *Handler) settingsOptions(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"currencies":  currency.Currencies,
		"dateFormats": currency.DateFormats,
		"timezones":   currency.Timezones,
	})
}

func (h *Handler) exportData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", "attachment; filename=inventory-export.json")
	httpx.JSON(w, http.StatusOK, h.service.Export())
}

func (h *Handler) importData(w http.ResponseWriter, r *http.Request) {
	var doc ImportDocument
	if err := httpx.DecodeJSON(r, &doc); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.service.Import(r.Context(), doc); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.State())
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.State())
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := httpx.DecodeJSON(r, target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return false
	}
	if err := h.validate.Struct(target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var inUse *InUseError
	switch {
	case errors.As(err, &inUse):
		httpx.Problem(w, http.StatusConflict, "Conflict", inUse.Error())
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrSupplierNotFound),
		errors.Is(err, ErrOrderNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrOrderFinalized):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrInvalidQuantity):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("inventory request failed", slog.Any("error", err))
		httpx.RespondError(w, r, err)
	}
}
