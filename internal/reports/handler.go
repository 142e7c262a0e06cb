package reports

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/jaksoftwares/inventory-master/internal/platform/httpx"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
)

// Handler serves the derived views. Concurrent requests for the same view
// collapse onto one fold via singleflight; the folds are cheap but the
// snapshots they copy are not free under load.
type Handler struct {
	inventory *inventory.Store
	supplier  *supplier.Store

	group singleflight.Group
}

func NewHandler(inv *inventory.Store, sup *supplier.Store) *Handler {
	return &Handler{inventory: inv, supplier: sup}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/inventory", h.inventoryReport)
	r.Get("/supplier", h.supplierDashboard)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.build(r.Context(), "dashboard", func() (interface{}, error) {
		return Dashboard(h.inventory.State()), nil
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) inventoryReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.build(r.Context(), "inventory", func() (interface{}, error) {
		return Inventory(h.inventory.State()), nil
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) supplierDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.build(r.Context(), "supplier", func() (interface{}, error) {
		return Supplier(h.supplier.State()), nil
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) build(ctx context.Context, key string, fn func() (interface{}, error)) (interface{}, error) {
	ch := h.group.DoChan(key, func() (interface{}, error) { return fn() })
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
