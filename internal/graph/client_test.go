package graph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

func validGraphConfig() config.GraphConfig {
	return config.GraphConfig{
		URI:               "bolt://localhost:7687",
		Username:          "neo4j",
		Password:          "password",
		ConnectionTimeout: 30 * time.Second,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validGraphConfig()))

	tests := []struct {
		name   string
		mutate func(*config.GraphConfig)
	}{
		{"empty uri", func(c *config.GraphConfig) { c.URI = "" }},
		{"empty username", func(c *config.GraphConfig) { c.Username = "" }},
		{"zero timeout", func(c *config.GraphConfig) { c.ConnectionTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validGraphConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Equal(t, ErrCodeGraphInvalidConfig, types.CodeOf(err))
		})
	}
}

func TestNewNeo4jClient_RejectsInvalidConfig(t *testing.T) {
	cfg := validGraphConfig()
	cfg.URI = ""
	_, err := NewNeo4jClient(cfg)
	require.Error(t, err)
}

func TestNeo4jClient_QueryWithoutConnect(t *testing.T) {
	client, err := NewNeo4jClient(validGraphConfig())
	require.NoError(t, err)

	_, err = client.Query(context.Background(), "MATCH (n) RETURN n", nil)
	require.Error(t, err)
	assert.Equal(t, ErrCodeGraphConnectionClosed, types.CodeOf(err))

	status := client.Health(context.Background())
	assert.False(t, status.IsHealthy())
}

func TestNeo4jClient_CloseWithoutConnect(t *testing.T) {
	client, err := NewNeo4jClient(validGraphConfig())
	require.NoError(t, err)
	assert.NoError(t, client.Close(context.Background()))
}

func TestQueryResult_Empty(t *testing.T) {
	assert.True(t, QueryResult{}.Empty())
	assert.False(t, QueryResult{Records: []map[string]any{{"n": 1}}}.Empty())
}

func TestMockClient_ScriptedResults(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()
	require.NoError(t, m.Connect(ctx))

	m.SetResult(QueryResult{Records: []map[string]any{{"name": "default"}}})
	m.SetResultFor("MATCH (s:Stakeholder) RETURN s.name", QueryResult{
		Columns: []string{"s.name"},
		Records: []map[string]any{{"s.name": "Alice"}, {"s.name": "Bob"}},
	})

	res, err := m.Query(ctx, "MATCH (s:Stakeholder) RETURN s.name", map[string]any{"x": 1})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)

	res, err = m.Query(ctx, "MATCH (g:Goal) RETURN g", nil)
	require.NoError(t, err)
	assert.Equal(t, "default", res.Records[0]["name"])

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "MATCH (s:Stakeholder) RETURN s.name", calls[0].Cypher)
	assert.Equal(t, map[string]any{"x": 1}, calls[0].Params)
}

func TestMockClient_Health(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	assert.False(t, m.Health(ctx).IsHealthy())
	require.NoError(t, m.Connect(ctx))
	assert.True(t, m.Health(ctx).IsHealthy())
	require.NoError(t, m.Close(ctx))
	assert.False(t, m.Health(ctx).IsHealthy())
}
