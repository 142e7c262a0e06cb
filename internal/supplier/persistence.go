package supplier

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
	DataKey     = "dovepeak-supplier-data"
	SettingsKey = "dovepeak-supplier-settings"
)

type document struct {
	Products       []Product       `json:"products"`
	Customers      []Customer      `json:"customers"`
	Orders         []Order         `json:"orders"`
	Communications []Communication `json:"communications"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// Adapter serializes the supplier store to the key-value collaborator.
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

// Load reads both documents; false means no usable domain data was stored
// and the caller falls back to sample data.
func (a *Adapter) Load(ctx context.Context) (State, bool) {
	state := State{Settings: a.loadSettings(ctx)}

	raw, err := a.kv.Get(ctx, DataKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			a.logger.Warn("load supplier data", slog.Any("error", err))
		}
		return state, false
	}

	var doc document
	if err := strictDecode(raw, &doc); err != nil {
		a.logger.Warn("discarding malformed supplier document", slog.Any("error", err))
		return state, false
	}

	state.Products = doc.Products
	state.Customers = doc.Customers
	state.Orders = doc.Orders
	state.Communications = doc.Communications
	return state, true
}

// Save writes both documents unconditionally.
func (a *Adapter) Save(ctx context.Context, state State) error {
	doc := document{
		Products:       state.Products,
		Customers:      state.Customers,
		Orders:         state.Orders,
		Communications: state.Communications,
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
			a.logger.Warn("load supplier settings", slog.Any("error", err))
		}
		return settings
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		a.logger.Warn("discarding malformed supplier settings", slog.Any("error", err))
		return DefaultSettings()
	}
	return settings
}

func strictDecode(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
