package graph

import (
	"context"
	"sync"

	"github.com/Snickdx/project-graph/internal/types"
)

// MockCall records one Query invocation on the mock client.
type MockCall struct {
	Cypher string
	Params map[string]any
}

// MockClient is a scripted Client for testing. It records every query and
// returns configured results or errors.
type MockClient struct {
	mu        sync.Mutex
	connected bool
	calls     []MockCall
	result    QueryResult
	queryErr  error
	results   map[string]QueryResult
}

// NewMockClient creates a mock graph client.
func NewMockClient() *MockClient {
	return &MockClient{
		results: make(map[string]QueryResult),
	}
}

// SetResult sets the result returned for any query without a per-cypher script.
func (m *MockClient) SetResult(result QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = result
}

// SetResultFor scripts the result for one exact cypher string.
func (m *MockClient) SetResultFor(cypher string, result QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[cypher] = result
}

// SetQueryError makes subsequent Query calls fail with err.
func (m *MockClient) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryErr = err
}

// Calls returns the recorded queries, in order.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Connect marks the mock as connected.
func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = true
	return nil
}

// Close marks the mock as disconnected.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// Health reports healthy while connected.
func (m *MockClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return types.Unhealthy("mock client not connected")
	}
	return types.Healthy("mock graph client")
}

// Query records the call and returns the scripted result or error.
func (m *MockClient) Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[string]any, len(params))
	for k, v := range params {
		copied[k] = v
	}
	m.calls = append(m.calls, MockCall{Cypher: cypher, Params: copied})

	if m.queryErr != nil {
		return QueryResult{}, m.queryErr
	}
	if result, ok := m.results[cypher]; ok {
		return result, nil
	}
	return m.result, nil
}
