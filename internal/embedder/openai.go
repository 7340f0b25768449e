package embedder

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tmc/langchaingo/llms/openai"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

// OpenAIEmbedder generates embeddings through the OpenAI embeddings API or
// any OpenAI-compatible endpoint.
type OpenAIEmbedder struct {
	client *openai.LLM
	model  string
	dims   atomic.Int64
}

// NewOpenAIEmbedder creates an embedder backed by the OpenAI API.
// Requires an API key via config or the OPENAI_API_KEY environment variable.
func NewOpenAIEmbedder(cfg config.EmbedderConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, types.NewError(ErrCodeInvalidConfig,
			"openai embedder requires api_key (or OPENAI_API_KEY environment variable)")
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithEmbeddingModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, types.WrapError(ErrCodeEmbedderUnavailable,
			"failed to create openai embedding client", err)
	}

	return &OpenAIEmbedder{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Embed generates an embedding vector for a single text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one API call.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	raw, err := e.client.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, types.WrapError(ErrCodeEmbeddingBatchFailed,
			fmt.Sprintf("openai embedding failed for %d texts", len(texts)), err)
	}
	if len(raw) != len(texts) {
		return nil, types.NewError(ErrCodeEmbeddingBatchFailed,
			fmt.Sprintf("openai returned %d embeddings for %d texts", len(raw), len(texts)))
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
func (e *OpenAIEmbedder) Dimensions() int {
	return int(e.dims.Load())
}

// Model returns the embedding model name.
func (e *OpenAIEmbedder) Model() string {
	return e.model
}

// Health checks the provider by embedding a short probe text.
func (e *OpenAIEmbedder) Health(ctx context.Context) types.HealthStatus {
	if _, err := e.Embed(ctx, "health probe"); err != nil {
		return types.Unhealthy(err.Error())
	}
	return types.Healthy(fmt.Sprintf("openai embedder operational (model: %s)", e.model))
}
