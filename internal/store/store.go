package store

import (
	"context"

	"github.com/rosterhub/devstore/internal/model"
)

// DocumentStore owns the backing document and is the only component that
// touches it. Every other component operates on an in-memory State value.
type DocumentStore interface {
	// Load reads the backing document. It is total: missing or corrupt data
	// degrades to a structurally valid empty state, never an error.
	Load(ctx context.Context) *model.State

	// Save serializes and replaces the backing document in full. A reader
	// must never observe a partially written document. A failed save returns
	// a typed error; it never crashes the process.
	Save(ctx context.Context, st *model.State) error

	// Update runs one load-mutate-save cycle as a single serialized unit.
	// Concurrent Update calls never lose each other's writes. If fn returns
	// an error, nothing is persisted.
	Update(ctx context.Context, fn func(*model.State) error) error
}
