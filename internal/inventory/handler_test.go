package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Service, http.Handler) {
	t.Helper()
	svc := newTestService(t)
	handler := NewHandler(nil, svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return svc, r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateProductEndpoint(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/products", map[string]any{
		"name": "Desk Lamp", "sku": "DL-001", "category": "Electronics",
		"price": 35.0, "cost": 20.0, "quantity": 12, "minStock": 4,
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	var product Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	require.Equal(t, "Desk Lamp", product.Name)
	require.NotEmpty(t, product.ID)
}

func TestCreateProductValidation(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/products", map[string]any{"sku": "DL-001"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Validation Failed")
}

func TestDeleteCategoryInUseReturnsConflict(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CategoryInput{Name: "Tools"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductInput{Name: "Hammer", SKU: "HM-1", Category: "Tools"})
	require.NoError(t, err)

	rr := doJSON(t, h, http.MethodDelete, "/categories/"+cat.ID, nil)

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Contains(t, rr.Body.String(), "referenced by 1 product")
}

func TestCompleteOrderTwiceReturnsConflict(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	sup, err := svc.CreateSupplier(ctx, SupplierInput{Name: "Acme"})
	require.NoError(t, err)
	product, err := svc.CreateProduct(ctx, ProductInput{Name: "Widget", SKU: "W-1", Quantity: 5})
	require.NoError(t, err)
	order, err := svc.CreatePurchaseOrder(ctx, OrderInput{
		SupplierID: sup.ID,
		Items:      []OrderItem{{ProductID: product.ID, Quantity: 3, UnitCost: 2}},
	})
	require.NoError(t, err)

	rr := doJSON(t, h, http.MethodPost, "/orders/"+order.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/orders/"+order.ID+"/complete", nil)
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestAdjustStockEndpointRejectsUnknownProduct(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/movements", map[string]any{
		"productId": "nope", "type": "in", "quantity": 5, "reason": "Recount",
	})

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateSettingsRejectsUnknownCurrency(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPut, "/settings", map[string]any{
		"companyName": "Acme", "currency": "XXX",
		"dateFormat": "MM/DD/YYYY", "timezone": "UTC",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "unsupported currency")
}

func TestSettingsOptionsEndpoint(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodGet, "/settings/options", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var payload struct {
		Currencies []struct {
			Code   string `json:"code"`
			Symbol string `json:"symbol"`
		} `json:"currencies"`
		DateFormats []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"dateFormats"`
		Timezones []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"timezones"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Currencies)
	require.Equal(t, "USD", payload.Currencies[0].Code)
	require.NotEmpty(t, payload.DateFormats)
	require.Equal(t, "MM/DD/YYYY", payload.DateFormats[0].Code)
	require.NotEmpty(t, payload.Timezones)
	require.NotEmpty(t, payload.Timezones[0].Name)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, ProductInput{Name: "Widget", SKU: "W-1", Quantity: 5})
	require.NoError(t, err)

	rr := doJSON(t, h, http.MethodGet, "/data/export", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var doc ImportDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	require.Len(t, doc.Products, 1)

	require.NoError(t, svc.Reset(ctx))

	rr = doJSON(t, h, http.MethodPost, "/data/import", doc)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.State().Products, 1)
	require.Equal(t, "Widget", svc.State().Products[0].Name)
}
