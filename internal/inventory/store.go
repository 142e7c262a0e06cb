package inventory

import (
	"context"
	"log/slog"
	"sync"
)

// Store owns the inventory state. Transitions are serialized behind one
// mutex and the whole document is persisted synchronously after every
// transition, so readers always observe a fully applied state and the
// backing store never holds a partial write of a multi-action transition.
type Store struct {
	mu      sync.Mutex
	state   State
	adapter *Adapter
	logger  *slog.Logger
}

// NewStore builds a Store. The adapter may be nil, in which case the store
// is purely in-memory (used by tests and derived-view fixtures).
func NewStore(adapter *Adapter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:   State{Settings: DefaultSettings()},
		adapter: adapter,
		logger:  logger,
	}
}

// Open loads the persisted documents, seeding deterministic sample data when
// nothing was stored or the stored document fails strict decoding.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adapter == nil {
		s.state = SeedState()
		return nil
	}

	state, ok := s.adapter.Load(ctx)
	if !ok {
		s.logger.Info("seeding inventory sample data")
		seed := SeedState()
		seed.Settings = state.Settings
		state = seed
	}
	s.state = state
	return s.adapter.Save(ctx, s.state)
}

// State returns a snapshot of the current state. Collections in the
// snapshot must be treated as read-only.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the given actions as a single transition.
func (s *Store) Dispatch(ctx context.Context, actions ...Action) error {
	return s.Update(ctx, func(State) ([]Action, error) {
		return actions, nil
	})
}

// Update runs fn against the current state under the store lock and applies
// the returned actions as one transition. The persisted document is written
// once per transition, after all actions have been reduced; a persistence
// failure leaves the in-memory state applied and is reported to the caller.
func (s *Store) Update(ctx context.Context, fn func(State) ([]Action, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := fn(s.state)
	if err != nil {
		return err
	}
	for _, action := range actions {
		s.state = Reduce(s.state, action)
	}
	if s.adapter == nil || len(actions) == 0 {
		return nil
	}
	if err := s.adapter.Save(ctx, s.state); err != nil {
		s.logger.Warn("persist inventory state", slog.Any("error", err))
		return err
	}
	return nil
}

// Reset clears the persisted documents and reinstalls sample data, mirroring
// the clear-and-reload flow of the settings surface.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adapter != nil {
		if err := s.adapter.Clear(ctx); err != nil {
			return err
		}
	}
	s.state = SeedState()
	if s.adapter == nil {
		return nil
	}
	return s.adapter.Save(ctx, s.state)
}
