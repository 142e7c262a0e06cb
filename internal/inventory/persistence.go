package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jaksoftwares/inventory-master/internal/platform/storage"
)

// Storage keys, kept compatible with the documents the browser app wrote.
const (
	DataKey     = "dovepeak-inventory-data"
	SettingsKey = "dovepeak-inventory-settings"
)

// document is the persisted layout of the domain collections. Dates travel
// as ISO-8601 strings through encoding/json.
type document struct {
	Products       []Product       `json:"products"`
	Categories     []Category      `json:"categories"`
	Suppliers      []Supplier      `json:"suppliers"`
	StockMovements []StockMovement `json:"stockMovements"`
	PurchaseOrders []PurchaseOrder `json:"purchaseOrders"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// Adapter serializes the store state to the key-value collaborator. Domain
// data and settings live under separate keys; both are overwritten in full
// on every save.
type Adapter struct {
	kv     storage.KV
	logger *slog.Logger
}

// NewAdapter builds an Adapter.
func NewAdapter(kv storage.KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{kv: kv, logger: logger}
}

// Load reads both documents. The second return value is false when no domain
// data was stored or it failed strict decoding; the caller falls back to
// sample data. Settings decode independently and merge over defaults, so a
// broken settings document never discards domain data.
func (a *Adapter) Load(ctx context.Context) (State, bool) {
	state := State{Settings: a.loadSettings(ctx)}

	raw, err := a.kv.Get(ctx, DataKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			a.logger.Warn("load inventory data", slog.Any("error", err))
		}
		return state, false
	}

	var doc document
	if err := strictDecode(raw, &doc); err != nil {
		a.logger.Warn("discarding malformed inventory document", slog.Any("error", err))
		return state, false
	}

	state.Products = doc.Products
	state.Categories = doc.Categories
	state.Suppliers = doc.Suppliers
	state.StockMovements = doc.StockMovements
	state.PurchaseOrders = doc.PurchaseOrders
	return state, true
}

// Save writes both documents unconditionally.
func (a *Adapter) Save(ctx context.Context, state State) error {
	doc := document{
		Products:       state.Products,
		Categories:     state.Categories,
		Suppliers:      state.Suppliers,
		StockMovements: state.StockMovements,
		PurchaseOrders: state.PurchaseOrders,
		LastUpdated:    time.Now().UTC(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := a.kv.Set(ctx, DataKey, data); err != nil {
		return err
	}
	settings, err := json.Marshal(state.Settings)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, SettingsKey, settings)
}

// Clear removes both documents.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.kv.Delete(ctx, DataKey, SettingsKey)
}

func (a *Adapter) loadSettings(ctx context.Context) Settings {
	settings := DefaultSettings()
	raw, err := a.kv.Get(ctx, SettingsKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			a.logger.Warn("load inventory settings", slog.Any("error", err))
		}
		return settings
	}
	// Lenient on purpose: stored fields overlay defaults, missing fields
	// keep them.
	if err := json.Unmarshal(raw, &settings); err != nil {
		a.logger.Warn("discarding malformed settings document", slog.Any("error", err))
		return DefaultSettings()
	}
	return settings
}

func strictDecode(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
