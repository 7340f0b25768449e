package fallback

import (
	"fmt"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

// Provider identifiers accepted by New.
const (
	ProviderOllama = "ollama"
	ProviderMock   = "mock"
)

// New creates a reasoner based on the provided configuration.
//
// Supported providers:
//   - "ollama": local Ollama chat model (default)
//   - "mock":   canned-answer reasoner for tests and demos
func New(cfg config.FallbackConfig) (Reasoner, error) {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaReasoner(cfg)
	case ProviderMock:
		return NewMockReasoner(), nil
	default:
		return nil, types.NewError(ErrCodeInvalidConfig,
			fmt.Sprintf("unknown fallback provider %q - must be ollama or mock", cfg.Provider))
	}
}
