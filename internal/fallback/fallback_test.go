package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	withSchema := buildPrompt("who owns DK-002?", "Nodes: Stakeholder, Domain_Knowledge.")
	assert.Contains(t, withSchema, "Graph schema: Nodes: Stakeholder")
	assert.Contains(t, withSchema, "Question: who owns DK-002?")

	withoutSchema := buildPrompt("who owns DK-002?", "")
	assert.Equal(t, "Question: who owns DK-002?", withoutSchema)
}

func TestMockReasoner_Answer(t *testing.T) {
	m := NewMockReasoner()
	m.SetAnswer("forty-two")

	answer, err := m.Answer(context.Background(), "the big question", "schema")
	require.NoError(t, err)
	assert.Equal(t, "forty-two", answer)

	calls := m.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "the big question", calls[0].Question)
	assert.Equal(t, "schema", calls[0].SchemaContext)
}

func TestMockReasoner_Error(t *testing.T) {
	m := NewMockReasoner()
	m.SetError(errors.New("llm down"))

	_, err := m.Answer(context.Background(), "q", "")
	require.Error(t, err)
	assert.False(t, m.Health(context.Background()).IsHealthy())
}
