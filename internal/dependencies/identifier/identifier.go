package identifier

import "github.com/google/uuid"

// Source provides id generation that can be mocked for testing
type Source interface {
	// NewID returns a fresh identifier, unique per call
	NewID() string
}

// UUIDSource implements Source using random UUIDs
type UUIDSource struct{}

// New creates a new UUIDSource
func New() *UUIDSource {
	return &UUIDSource{}
}

// NewID returns a random UUID string
func (s *UUIDSource) NewID() string {
	return uuid.NewString()
}
