package supplier

import (
	"context"
	"log/slog"
	"sync"
)

// Store owns the supplier-portal state. Same single-writer contract as the
// inventory store: one mutex, whole-document persistence after every
// transition.
type Store struct {
	mu      sync.Mutex
	state   State
	adapter *Adapter
	logger  *slog.Logger
}

// NewStore builds a Store. A nil adapter keeps the store in-memory.
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

// Open loads the persisted documents, seeding sample data when nothing was
// stored or the document fails strict decoding.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adapter == nil {
		s.state = SeedState()
		return nil
	}

	state, ok := s.adapter.Load(ctx)
	if !ok {
		s.logger.Info("seeding supplier sample data")
		seed := SeedState()
		seed.Settings = state.Settings
		state = seed
	}
	s.state = state
	return s.adapter.Save(ctx, s.state)
}

// State returns a read-only snapshot.
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

// Update runs fn under the store lock and applies the returned actions as
// one transition, persisting once afterwards.
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
		s.logger.Warn("persist supplier state", slog.Any("error", err))
		return err
	}
	return nil
}

// Reset clears the persisted documents and reinstalls sample data.
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
