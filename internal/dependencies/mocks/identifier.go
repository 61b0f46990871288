package mocks

import (
	"fmt"

	"github.com/rosterhub/devstore/internal/dependencies/identifier"
)

// MockIDSource is a mock implementation of identifier.Source for testing
type MockIDSource struct {
	// Queued is a queue of ids to return from NewID
	Queued []string
	index  int
	serial int
}

// Ensure MockIDSource implements Source
var _ identifier.Source = (*MockIDSource)(nil)

// NewMockIDSource creates a new MockIDSource
func NewMockIDSource() *MockIDSource {
	return &MockIDSource{}
}

// NewID returns the next queued id, or a deterministic "id-N" fallback
func (s *MockIDSource) NewID() string {
	if s.index < len(s.Queued) {
		id := s.Queued[s.index]
		s.index++
		return id
	}
	s.serial++
	return fmt.Sprintf("id-%d", s.serial)
}

// Queue adds ids to the result queue
func (s *MockIDSource) Queue(ids ...string) {
	s.Queued = append(s.Queued, ids...)
}

// Reset clears all queued ids and the serial counter
func (s *MockIDSource) Reset() {
	s.Queued = nil
	s.index = 0
	s.serial = 0
}
