// mock_engine.go - Mock conversion engine implementations for testing
package testutil

import (
	"context"
	"sync"

	"github.com/mdgateway/backend/internal/convert"
)

// MockEngine implements convert.Engine for testing. It records every staged
// path it is handed and returns a canned result or error. It deliberately
// does not implement convert.HandlerRegistry; use MockRegistryEngine for
// registry-backed tests.
type MockEngine struct {
	Result *convert.Result
	Err    error

	mu    sync.Mutex
	paths []string
}

// NewMockEngine creates a mock engine returning the given result.
func NewMockEngine(result *convert.Result, err error) *MockEngine {
	return &MockEngine{Result: result, Err: err}
}

func (m *MockEngine) Convert(_ context.Context, path string) (*convert.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// Paths returns the staged file paths passed to Convert, in order.
func (m *MockEngine) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

// MockRegistryEngine is a MockEngine that also exposes a fixed handler list.
type MockRegistryEngine struct {
	MockEngine
	Registered []any
}

// NewMockRegistryEngine creates a registry-backed mock engine.
func NewMockRegistryEngine(result *convert.Result, handlers ...any) *MockRegistryEngine {
	return &MockRegistryEngine{
		MockEngine: MockEngine{Result: result},
		Registered: handlers,
	}
}

// Handlers implements convert.HandlerRegistry.
func (m *MockRegistryEngine) Handlers() []any {
	return m.Registered
}
