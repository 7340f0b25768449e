// Package embedder adapts external embedding providers behind a single
// interface. The router treats embedding as a black-box call: text in,
// fixed-length vector out. The same provider and model must be used when
// the template bank is built and when queries are served.
package embedder

import (
	"context"

	"github.com/Snickdx/project-graph/internal/types"
)

// Embedder generates embedding vectors from text content.
// Implementations must be thread-safe for concurrent access.
type Embedder interface {
	// Embed generates an embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch generates embeddings for multiple texts in one provider
	// call. The result preserves input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// Dimensions returns the dimensionality of embedding vectors, or 0 if
	// no vector has been produced yet.
	Dimensions() int

	// Model returns the name of the embedding model being used.
	Model() string

	// Health returns the health status of the embedder.
	Health(ctx context.Context) types.HealthStatus
}

// toFloat64 converts a provider float32 vector to the float64 vectors used
// throughout the matcher.
func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
