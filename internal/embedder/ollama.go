package embedder

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

// OllamaEmbedder generates embeddings through a local Ollama server.
// Thread-safety: the underlying langchaingo client is safe for concurrent
// use; dimensionality is tracked atomically.
type OllamaEmbedder struct {
	client *ollama.LLM
	model  string
	dims   atomic.Int64
}

// NewOllamaEmbedder creates an embedder backed by an Ollama server.
func NewOllamaEmbedder(cfg config.EmbedderConfig) (*OllamaEmbedder, error) {
	serverURL := cfg.BaseURL
	if serverURL == "" {
		serverURL = "http://localhost:11434"
	}

	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
	}
	if cfg.Model != "" {
		opts = append(opts, ollama.WithModel(cfg.Model))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, types.WrapError(ErrCodeEmbedderUnavailable,
			"failed to create ollama embedding client", err)
	}

	return &OllamaEmbedder{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Embed generates an embedding vector for a single text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one provider call.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	raw, err := e.client.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, types.WrapError(ErrCodeEmbeddingBatchFailed,
			fmt.Sprintf("ollama embedding failed for %d texts", len(texts)), err)
	}
	if len(raw) != len(texts) {
		return nil, types.NewError(ErrCodeEmbeddingBatchFailed,
			fmt.Sprintf("ollama returned %d embeddings for %d texts", len(raw), len(texts)))
	}

	vectors := make([][]float64, len(raw))
	for i, v := range raw {
		vectors[i] = toFloat64(v)
	}
	e.dims.Store(int64(len(vectors[0])))

	return vectors, nil
}

// Dimensions returns the observed embedding dimensionality, or 0 before the
// first successful call.
func (e *OllamaEmbedder) Dimensions() int {
	return int(e.dims.Load())
}

// Model returns the embedding model name.
func (e *OllamaEmbedder) Model() string {
	return e.model
}

// Health checks the provider by embedding a short probe text.
func (e *OllamaEmbedder) Health(ctx context.Context) types.HealthStatus {
	if _, err := e.Embed(ctx, "health probe"); err != nil {
		return types.Unhealthy(err.Error())
	}
	return types.Healthy(fmt.Sprintf("ollama embedder operational (model: %s)", e.model))
}
