package supplier

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jaksoftwares/inventory-master/internal/platform/httpx"
)

// Handler wires the supplier-portal HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the supplier handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers the supplier-portal routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/state", h.state)

	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)

	r.Get("/customers", h.listCustomers)
	r.Post("/customers", h.createCustomer)
	r.Put("/customers/{id}", h.updateCustomer)
	r.Delete("/customers/{id}", h.deleteCustomer)

	r.Get("/orders", h.listOrders)
	r.Post("/orders", h.createOrder)
	r.Put("/orders/{id}/status", h.updateOrderStatus)
	r.Put("/orders/{id}/tracking", h.setTracking)

	r.Get("/communications", h.listCommunications)
	r.Post("/communications", h.addCommunication)
	r.Post("/communications/{id}/response", h.respond)
	r.Put("/communications/{id}/status", h.markCommunication)

	r.Get("/settings", h.settings)
	r.Put("/settings", h.updateSettings)

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

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !h.decode(w, r, &req) {
		return
	}
	customer, err := h.service.CreateCustomer(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !h.decode(w, r, &req) {
		return
	}
	customer, err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !h.decode(w, r, &req) {
		return
	}
	order, err := h.service.CreateOrder(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !h.decode(w, r, &req) {
		return
	}
	order, err := h.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), OrderStatus(req.Status))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) setTracking(w http.ResponseWriter, r *http.Request) {
	var req trackingRequest
	if !h.decode(w, r, &req) {
		return
	}
	order, err := h.service.SetTrackingNumber(r.Context(), chi.URLParam(r, "id"), req.TrackingNumber)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) listCommunications(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Communications)
}

func (h *Handler) addCommunication(w http.ResponseWriter, r *http.Request) {
	var req communicationRequest
	if !h.decode(w, r, &req) {
		return
	}
	comm, err := h.service.AddCommunication(r.Context(), CommunicationInput{
		CustomerID: req.CustomerID,
		Type:       CommunicationType(req.Type),
		Subject:    req.Subject,
		Message:    req.Message,
		Priority:   Priority(req.Priority),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, comm)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request) {
	var req responseRequest
	if !h.decode(w, r, &req) {
		return
	}
	comm, err := h.service.Respond(r.Context(), chi.URLParam(r, "id"), req.Response)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, comm)
}

func (h *Handler) markCommunication(w http.ResponseWriter, r *http.Request) {
	var req markRequest
	if !h.decode(w, r, &req) {
		return
	}
	comm, err := h.service.MarkCommunication(r.Context(), chi.URLParam(r, "id"), CommunicationStatus(req.Status))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, comm)
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.State().Settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.service.UpdateSettings(r.Context(), req.toSettings()); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.State().Settings)
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
	switch {
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrCommunicationNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrInvalidTransition):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		h.logger.Error("supplier request failed", slog.Any("error", err))
		httpx.RespondError(w, r, err)
	}
}
