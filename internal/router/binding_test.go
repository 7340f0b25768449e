package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snickdx/project-graph/internal/types"
)

func TestBindParams_NoParams(t *testing.T) {
	bindings, err := bindParams(nil, "who are the stakeholders")
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

func TestBindParams_IDToken(t *testing.T) {
	bindings, err := bindParams([]string{"id"}, "show me requirement FR-017 please")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "FR-017"}, bindings)
}

func TestBindParams_QuotedName(t *testing.T) {
	bindings, err := bindParams([]string{"area"}, `who knows about "Authentication"?`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"area": "Authentication"}, bindings)

	bindings, err = bindParams([]string{"area"}, "who knows about 'Payment Processing'?")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"area": "Payment Processing"}, bindings)
}

func TestBindParams_IDParamPrefersIDToken(t *testing.T) {
	bindings, err := bindParams([]string{"id"}, `details for "something" about DK-002`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "DK-002"}, bindings)
}

func TestBindParams_IDParamFallsBackToQuoted(t *testing.T) {
	bindings, err := bindParams([]string{"node_id"}, `details for "abc-123"`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"node_id": "abc-123"}, bindings)
}

func TestBindParams_MultipleParams(t *testing.T) {
	bindings, err := bindParams([]string{"area", "id"}, `compare "Security" with STK-004`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"area": "Security", "id": "STK-004"}, bindings)
}

func TestBindParams_UnresolvedFails(t *testing.T) {
	_, err := bindParams([]string{"area"}, "who knows about security stuff")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.NewError(types.BINDING_FAILED, "")))
	assert.Contains(t, err.Error(), "$area")
}

func TestExtractIDs(t *testing.T) {
	ids := extractIDs("explain the relationship between DK-002 and STK-004")
	assert.Equal(t, []string{"DK-002", "STK-004"}, ids)

	assert.Empty(t, extractIDs("no identifiers in here"))
	assert.Empty(t, extractIDs("lowercase dk-002 is not an id token"))
}

func TestExtractQuoted(t *testing.T) {
	quoted := extractQuoted(`find "Alpha" and 'Beta' together`)
	assert.Equal(t, []string{"Alpha", "Beta"}, quoted)
}
