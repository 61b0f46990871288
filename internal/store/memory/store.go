package memory

import (
	"context"
	"sync"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store"
)

// Store is an in-memory implementation of the document store, used by tests
// and ephemeral dev sessions. State handed out or taken in is deep-copied so
// callers never alias the stored document.
type Store struct {
	mu    sync.Mutex
	state *model.State
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		state: model.NewState(),
	}
}

// Ensure Store implements the interface
var _ store.DocumentStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) *model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Save(ctx context.Context, st *model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st.Clone()
	return nil
}

func (s *Store) Update(ctx context.Context, fn func(*model.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutate a copy and swap on success so a failed fn persists nothing.
	st := s.state.Clone()
	if err := fn(st); err != nil {
		return err
	}
	s.state = st
	return nil
}
