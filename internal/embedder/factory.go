package embedder

import (
	"fmt"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

// Provider identifiers accepted by New.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// New creates an embedder based on the provided configuration.
//
// Supported providers:
//   - "ollama": local Ollama server (default; no API key)
//   - "openai": OpenAI embeddings API or a compatible endpoint
//   - "mock":   deterministic hash-based embedder for tests and demos
//
// Startup should fail fast if the embedder cannot be created: the template
// bank cannot be built without one.
func New(cfg config.EmbedderConfig) (Embedder, error) {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaEmbedder(cfg)
	case ProviderOpenAI:
		return NewOpenAIEmbedder(cfg)
	case ProviderMock:
		return NewMockEmbedder(), nil
	default:
		return nil, types.NewError(ErrCodeInvalidConfig,
			fmt.Sprintf("unknown embedder provider %q - must be ollama, openai or mock", cfg.Provider))
	}
}
