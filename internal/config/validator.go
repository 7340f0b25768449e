package config

import (
	"fmt"

	"github.com/Snickdx/project-graph/internal/types"
)

// Validator validates a loaded configuration.
type Validator interface {
	Validate(cfg *Config) error
}

// validator implements Validator with structural checks only; connectivity
// is verified by the adapters themselves at startup.
type validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() Validator {
	return &validator{}
}

// Validate checks the configuration for structural problems.
func (v *validator) Validate(cfg *Config) error {
	if cfg == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "config cannot be nil")
	}

	if cfg.Router.ConfidenceThreshold < 0 || cfg.Router.ConfidenceThreshold > 1 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("router.confidence_threshold must be in [0,1], got %v", cfg.Router.ConfidenceThreshold))
	}
	if cfg.Router.EmbedTimeout <= 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "router.embed_timeout must be positive")
	}
	if cfg.Router.ExecuteTimeout <= 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "router.execute_timeout must be positive")
	}
	if cfg.Router.FallbackTimeout <= 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "router.fallback_timeout must be positive")
	}
	if cfg.Router.MaxRows <= 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "router.max_rows must be positive")
	}

	if cfg.Graph.URI == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "graph.uri cannot be empty")
	}
	if cfg.Graph.Username == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "graph.username cannot be empty")
	}
	if cfg.Graph.ConnectionTimeout <= 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "graph.connection_timeout must be positive")
	}

	if cfg.Embedder.Provider == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "embedder.provider cannot be empty")
	}
	if cfg.Embedder.Provider != "mock" && cfg.Embedder.Model == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "embedder.model cannot be empty")
	}
	if cfg.Embedder.Provider == "openai" && cfg.Embedder.APIKey == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"openai embedder requires api_key (or OPENAI_API_KEY environment variable)")
	}

	if cfg.Fallback.Provider == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "fallback.provider cannot be empty")
	}
	if cfg.Fallback.Provider != "mock" && cfg.Fallback.Model == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "fallback.model cannot be empty")
	}

	return nil
}
