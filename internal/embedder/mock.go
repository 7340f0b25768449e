package embedder

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
	"sync"

	"github.com/Snickdx/project-graph/internal/types"
)

// MockEmbedder is a deterministic Embedder for testing. It derives each
// embedding from a SHA256 hash of the text, so the same text always
// produces the same vector, and records every call for assertions.
type MockEmbedder struct {
	mu           sync.Mutex
	dimensions   int
	embedCalls   []string
	batchCalls   [][]string
	embedErr     error
	batchErr     error
	fixed        map[string][]float64
	healthStatus types.HealthStatus
}

// NewMockEmbedder creates a mock embedder producing 32-dimensional vectors.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{
		dimensions:   32,
		fixed:        make(map[string][]float64),
		healthStatus: types.Healthy("mock embedder"),
	}
}

// SetEmbedError makes subsequent Embed calls fail with err.
func (m *MockEmbedder) SetEmbedError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embedErr = err
}

// SetBatchError makes subsequent EmbedBatch calls fail with err.
func (m *MockEmbedder) SetBatchError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchErr = err
}

// SetFixedEmbedding pins the embedding returned for an exact text,
// overriding the hash-derived vector. Useful for forcing score ties.
func (m *MockEmbedder) SetFixedEmbedding(text string, embedding []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixed[text] = embedding
}

// EmbedCalls returns the texts passed to Embed, in order.
func (m *MockEmbedder) EmbedCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.embedCalls))
	copy(out, m.embedCalls)
	return out
}

// BatchCalls returns the text batches passed to EmbedBatch, in order.
func (m *MockEmbedder) BatchCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.batchCalls))
	copy(out, m.batchCalls)
	return out
}

// Embed generates a deterministic embedding for a single text.
func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.embedCalls = append(m.embedCalls, text)
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.generate(text), nil
}

// EmbedBatch generates deterministic embeddings for multiple texts.
func (m *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := make([]string, len(texts))
	copy(batch, texts)
	m.batchCalls = append(m.batchCalls, batch)

	if m.batchErr != nil {
		return nil, m.batchErr
	}

	embeddings := make([][]float64, len(texts))
	for i, text := range texts {
		embeddings[i] = m.generate(text)
	}
	return embeddings, nil
}

// generate creates a deterministic unit-length embedding from text. The
// SHA256 hash seeds a PRNG so identical texts map to identical vectors.
// Callers must hold m.mu.
func (m *MockEmbedder) generate(text string) []float64 {
	if fixed, ok := m.fixed[text]; ok {
		out := make([]float64, len(fixed))
		copy(out, fixed)
		return out
	}

	hash := sha256.Sum256([]byte(text))
	seed := int64(binary.BigEndian.Uint64(hash[:8]))
	rng := rand.New(rand.NewSource(seed))

	embedding := make([]float64, m.dimensions)
	var norm float64
	for i := range embedding {
		embedding[i] = rng.Float64()*2 - 1
		norm += embedding[i] * embedding[i]
	}

	// Normalize so self-similarity is exactly 1 within float tolerance.
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range embedding {
			embedding[i] /= norm
		}
	}
	return embedding
}

// Dimensions returns the mock's configured vector length.
func (m *MockEmbedder) Dimensions() int {
	return m.dimensions
}

// Model returns the mock model name.
func (m *MockEmbedder) Model() string {
	return "mock-embedder"
}

// Health returns the configured health status.
func (m *MockEmbedder) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.healthStatus
}
