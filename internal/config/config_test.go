package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snickdx/project-graph/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.5, cfg.Router.ConfidenceThreshold)
	assert.Equal(t, 10, cfg.Router.MaxRows)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "ollama", cfg.Embedder.Provider)
	assert.Equal(t, "ollama", cfg.Fallback.Provider)
	assert.NotEmpty(t, cfg.Fallback.SchemaContext)

	require.NoError(t, NewValidator().Validate(cfg), "defaults must validate")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
router:
  confidence_threshold: 0.65
  embed_timeout: 5s
  execute_timeout: 10s
  fallback_timeout: 20s
  max_rows: 25
graph:
  uri: bolt://graph:7687
  username: neo4j
  password: secret
  connection_timeout: 10s
embedder:
  provider: ollama
  model: nomic-embed-text
  base_url: http://ollama:11434
fallback:
  provider: ollama
  model: llama2
  base_url: http://ollama:11434
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := NewLoader(NewValidator()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.65, cfg.Router.ConfidenceThreshold)
	assert.Equal(t, 5*time.Second, cfg.Router.EmbedTimeout)
	assert.Equal(t, 25, cfg.Router.MaxRows)
	assert.Equal(t, "bolt://graph:7687", cfg.Graph.URI)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(NewValidator()).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, types.CONFIG_LOAD_FAILED, types.CodeOf(err))
}

func TestLoadWithDefaults_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader(NewValidator()).LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Router.ConfidenceThreshold)
}

func TestLoadWithDefaults_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("router:\n  confidence_threshold: 0.8\n"), 0o644))

	cfg, err := NewLoader(NewValidator()).LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Router.ConfidenceThreshold)
	// Untouched sections keep defaults.
	assert.Equal(t, "nomic-embed-text", cfg.Embedder.Model)
	assert.Equal(t, 10, cfg.Router.MaxRows)
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://env:7687")
	t.Setenv("NEO4J_PASSWORD", "env-secret")

	cfg := DefaultConfig()
	cfg.ApplyEnvironmentOverrides()

	assert.Equal(t, "bolt://env:7687", cfg.Graph.URI)
	assert.Equal(t, "env-secret", cfg.Graph.Password)
	assert.Equal(t, "neo4j", cfg.Graph.Username, "unset env vars leave config untouched")
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold above one", func(c *Config) { c.Router.ConfidenceThreshold = 1.5 }},
		{"threshold negative", func(c *Config) { c.Router.ConfidenceThreshold = -0.1 }},
		{"zero embed timeout", func(c *Config) { c.Router.EmbedTimeout = 0 }},
		{"zero max rows", func(c *Config) { c.Router.MaxRows = 0 }},
		{"empty graph uri", func(c *Config) { c.Graph.URI = "" }},
		{"empty embedder provider", func(c *Config) { c.Embedder.Provider = "" }},
		{"openai without key", func(c *Config) { c.Embedder.Provider = "openai"; c.Embedder.APIKey = "" }},
		{"empty fallback model", func(c *Config) { c.Fallback.Model = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := NewValidator().Validate(cfg)
			require.Error(t, err)
			assert.Equal(t, types.CONFIG_VALIDATION_FAILED, types.CodeOf(err))
		})
	}
}
