// Package config loads and validates project-graph configuration.
// Configuration is read from a YAML file via Viper, with environment
// variable overrides for credentials and endpoints.
package config

import (
	"os"
	"time"
)

// Config is the root configuration for the query routing service.
type Config struct {
	Router   RouterConfig   `mapstructure:"router" yaml:"router"`
	Graph    GraphConfig    `mapstructure:"graph" yaml:"graph"`
	Embedder EmbedderConfig `mapstructure:"embedder" yaml:"embedder"`
	Fallback FallbackConfig `mapstructure:"fallback" yaml:"fallback"`
}

// RouterConfig controls the hybrid routing decision policy.
type RouterConfig struct {
	// ConfidenceThreshold is the minimum cosine similarity for a template
	// match to be trusted. Scores at or above the threshold route to
	// template execution; scores below it route to the reasoning fallback.
	// Empirically tuned; treat as a tunable, not a contract.
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`

	// EmbedTimeout bounds a single embedding call.
	EmbedTimeout time.Duration `mapstructure:"embed_timeout" yaml:"embed_timeout"`

	// ExecuteTimeout bounds a single graph query execution.
	ExecuteTimeout time.Duration `mapstructure:"execute_timeout" yaml:"execute_timeout"`

	// FallbackTimeout bounds a single reasoning fallback call.
	FallbackTimeout time.Duration `mapstructure:"fallback_timeout" yaml:"fallback_timeout"`

	// MaxRows caps how many result rows are rendered into the answer text.
	MaxRows int `mapstructure:"max_rows" yaml:"max_rows"`
}

// GraphConfig holds Neo4j connection settings.
type GraphConfig struct {
	// URI is the bolt/neo4j connection URI (e.g. "bolt://localhost:7687").
	URI      string `mapstructure:"uri" yaml:"uri"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the target database name; empty uses the server default.
	Database string `mapstructure:"database" yaml:"database"`

	MaxConnectionPoolSize int           `mapstructure:"max_connection_pool_size" yaml:"max_connection_pool_size"`
	ConnectionTimeout     time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout"`
}

// EmbedderConfig holds configuration for the embedding provider.
type EmbedderConfig struct {
	// Provider selects the embedder implementation: "ollama", "openai" or "mock".
	Provider string `mapstructure:"provider" yaml:"provider"`

	// Model is the embedding model name (e.g. "nomic-embed-text").
	// The same model must be used at bank-build and query time; a mismatch
	// is a configuration error, not a runtime condition to tolerate.
	Model string `mapstructure:"model" yaml:"model"`

	// BaseURL is the serving endpoint (e.g. "http://localhost:11434").
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// APIKey authenticates against hosted providers. Can also be supplied
	// via the OPENAI_API_KEY environment variable.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// FallbackConfig holds configuration for the reasoning fallback provider.
type FallbackConfig struct {
	// Provider selects the fallback implementation: "ollama" or "mock".
	Provider string `mapstructure:"provider" yaml:"provider"`

	// Model is the chat model used for fallback answers (e.g. "llama2").
	Model string `mapstructure:"model" yaml:"model"`

	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Temperature for fallback generation. Zero keeps answers deterministic.
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`

	// SchemaContext is a short description of the graph schema included in
	// fallback prompts so the model can reason about node labels and
	// relationship types it cannot see.
	SchemaContext string `mapstructure:"schema_context" yaml:"schema_context"`
}

// ApplyEnvironmentOverrides checks for environment variables and overrides
// config values if they are set.
//
// Supported environment variables:
//   - NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD, NEO4J_DATABASE
//   - OPENAI_API_KEY
func (c *Config) ApplyEnvironmentOverrides() {
	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		c.Graph.URI = uri
	}
	if user := os.Getenv("NEO4J_USERNAME"); user != "" {
		c.Graph.Username = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		c.Graph.Password = pass
	}
	if db := os.Getenv("NEO4J_DATABASE"); db != "" {
		c.Graph.Database = db
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.Embedder.APIKey = key
	}
}
