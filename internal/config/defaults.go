package config

import "time"

// DefaultSchemaContext describes the project graph schema for fallback
// prompts. It mirrors the node labels and relationship types the ETL
// pipeline writes.
const DefaultSchemaContext = "Nodes: Project, Stakeholder, Role, Goal, Constraint, Feature, " +
	"Functional_Requirement, Domain_Knowledge, Qual_Scenario, Budget, Line_Item. " +
	"Relationships: HAS_STAKEHOLDER, PLAYS_ROLE, HAS_DOMAIN_KNOWLEDGE, " +
	"HAS_FUNCTIONAL_REQUIREMENT, RAISED_BY, SATISFIED_BY, REQUIRES_DOMAIN_KNOWLEDGE, HAS_LINE_ITEM."

// DefaultConfig returns a Config with sensible defaults for local
// development: a local Neo4j, a local Ollama for both embeddings and
// fallback reasoning.
func DefaultConfig() *Config {
	return &Config{
		Router: RouterConfig{
			ConfidenceThreshold: 0.5,
			EmbedTimeout:        15 * time.Second,
			ExecuteTimeout:      30 * time.Second,
			FallbackTimeout:     60 * time.Second,
			MaxRows:             10,
		},
		Graph: GraphConfig{
			URI:                   "bolt://localhost:7687",
			Username:              "neo4j",
			Password:              "password",
			Database:              "",
			MaxConnectionPoolSize: 50,
			ConnectionTimeout:     30 * time.Second,
		},
		Embedder: EmbedderConfig{
			Provider: "ollama",
			Model:    "nomic-embed-text",
			BaseURL:  "http://localhost:11434",
		},
		Fallback: FallbackConfig{
			Provider:      "ollama",
			Model:         "llama2",
			BaseURL:       "http://localhost:11434",
			Temperature:   0,
			SchemaContext: DefaultSchemaContext,
		},
	}
}
