package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store"
)

// Store is a JSON-file implementation of the document store. The whole
// document is one file; saves go through a temp file and an atomic rename so
// a reader never sees a partial write. A mutex serializes writers within the
// process; multi-process writers are out of scope.
type Store struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

// New creates a file-backed store persisting to the given path
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Ensure Store implements the interface
var _ store.DocumentStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) *model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Save(ctx context.Context, st *model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(st)
}

func (s *Store) Update(ctx context.Context, fn func(*model.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load()
	if err := fn(st); err != nil {
		return err
	}
	return s.save(st)
}

// load reads the document without locking. Missing or corrupt files degrade
// to an empty valid state so callers never handle read errors.
func (s *Store) load() *model.State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("document unreadable, starting empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
		}
		return model.NewState()
	}

	st := &model.State{}
	if err := json.Unmarshal(data, st); err != nil {
		s.logger.Warn("document corrupt, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return model.NewState()
	}
	st.Normalize()
	return st
}

// save writes the document without locking, temp-file-then-rename
func (s *Store) save(st *model.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".devstore-*.json")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp document: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}
