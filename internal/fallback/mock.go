package fallback

import (
	"context"
	"sync"

	"github.com/Snickdx/project-graph/internal/types"
)

// MockCall records one Answer invocation on the mock reasoner.
type MockCall struct {
	Question      string
	SchemaContext string
}

// MockReasoner is a scripted Reasoner for testing.
type MockReasoner struct {
	mu     sync.Mutex
	answer string
	err    error
	calls  []MockCall
}

// NewMockReasoner creates a mock reasoner returning a canned answer.
func NewMockReasoner() *MockReasoner {
	return &MockReasoner{answer: "mock answer"}
}

// SetAnswer sets the canned answer.
func (m *MockReasoner) SetAnswer(answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answer = answer
}

// SetError makes subsequent Answer calls fail with err.
func (m *MockReasoner) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the recorded invocations, in order.
func (m *MockReasoner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Answer records the call and returns the scripted answer or error.
func (m *MockReasoner) Answer(ctx context.Context, question string, schemaContext string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Question: question, SchemaContext: schemaContext})
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

// Health reports healthy unless an error is scripted.
func (m *MockReasoner) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return types.Unhealthy(m.err.Error())
	}
	return types.Healthy("mock reasoner")
}
