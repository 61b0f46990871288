package factory

import (
	"time"

	"github.com/rosterhub/devstore/internal/dependencies/mocks"
	"github.com/rosterhub/devstore/internal/store/memory"
	"github.com/rosterhub/devstore/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDSource
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and an in-memory store
func NewTestApp() *TestApp {
	docStore := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDSource()

	app := newWithDependencies(docStore, mockClock, mockIDs, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
