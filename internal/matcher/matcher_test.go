package matcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snickdx/project-graph/internal/bank"
	"github.com/Snickdx/project-graph/internal/embedder"
)

func loadBank(t *testing.T, emb *embedder.MockEmbedder, sources []bank.SourceRecord) *bank.Bank {
	t.Helper()
	b, err := bank.Load(context.Background(), emb, sources)
	require.NoError(t, err)
	return b
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12,
		"identical vectors have similarity 1")
	assert.InDelta(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-12,
		"orthogonal vectors have similarity 0")
	assert.InDelta(t, -1.0, CosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-12,
		"opposite vectors have similarity -1")
}

func TestCosineSimilarity_DegenerateInputs(t *testing.T) {
	assert.Zero(t, CosineSimilarity([]float64{0, 0, 0}, []float64{1, 2, 3}), "zero norm yields 0")
	assert.Zero(t, CosineSimilarity([]float64{1, 2, 3}, []float64{0, 0, 0}), "zero norm yields 0")
	assert.Zero(t, CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}), "length mismatch yields 0")
	assert.Zero(t, CosineSimilarity(nil, nil), "empty vectors yield 0")
}

func TestBestMatch_EmptyBank(t *testing.T) {
	emb := embedder.NewMockEmbedder()
	b := loadBank(t, emb, nil)

	tmpl, score := NewCosineMatcher().BestMatch([]float64{1, 2, 3}, b)
	assert.Nil(t, tmpl)
	assert.Zero(t, score)
}

func TestBestMatch_SelfSimilarity(t *testing.T) {
	// Embedding a template's own canonical question must return that
	// template at (or within float tolerance of) the maximum score.
	emb := embedder.NewMockEmbedder()
	sources := bank.SeedSources()
	b := loadBank(t, emb, sources)
	m := NewCosineMatcher()
	ctx := context.Background()

	for _, tmpl := range b.All() {
		text := tmpl.CanonicalQuestion
		if tmpl.Description != "" {
			text += " " + tmpl.Description
		}
		query, err := emb.Embed(ctx, text)
		require.NoError(t, err)

		got, score := m.BestMatch(query, b)
		require.NotNil(t, got)
		assert.Equal(t, tmpl.Key, got.Key, "self-match for %q", tmpl.CanonicalQuestion)
		assert.InDelta(t, 1.0, score, 1e-9)
	}
}

func TestBestMatch_TieBreakLexicographic(t *testing.T) {
	emb := embedder.NewMockEmbedder()
	shared := []float64{0.5, 0.5, 0, 0}
	// Pin identical embeddings so both templates score identically.
	emb.SetFixedEmbedding("zulu question alpha answer", shared)
	emb.SetFixedEmbedding("alpha question zulu answer", shared)

	b := loadBank(t, emb, []bank.SourceRecord{
		{CanonicalQuestion: "zulu question", QueryPattern: "MATCH (n) RETURN n", Description: "alpha answer"},
		{CanonicalQuestion: "alpha question", QueryPattern: "MATCH (m) RETURN m", Description: "zulu answer"},
	})

	m := NewCosineMatcher()
	for i := 0; i < 20; i++ {
		tmpl, score := m.BestMatch(shared, b)
		require.NotNil(t, tmpl)
		assert.Equal(t, "alpha-question", tmpl.Key, "lexicographically first key wins every call")
		assert.InDelta(t, 1.0, score, 1e-9)
	}
}

func TestBestMatch_PrefersCloserTemplate(t *testing.T) {
	emb := embedder.NewMockEmbedder()
	emb.SetFixedEmbedding("near target near", []float64{1, 0, 0})
	emb.SetFixedEmbedding("far target far", []float64{0, 1, 0})

	b := loadBank(t, emb, []bank.SourceRecord{
		{CanonicalQuestion: "near target", QueryPattern: "MATCH (n) RETURN n", Description: "near"},
		{CanonicalQuestion: "far target", QueryPattern: "MATCH (m) RETURN m", Description: "far"},
	})

	tmpl, score := NewCosineMatcher().BestMatch([]float64{0.9, 0.1, 0}, b)
	require.NotNil(t, tmpl)
	assert.Equal(t, "near-target", tmpl.Key)
	assert.Greater(t, score, 0.9)
}

func TestBestMatch_NegativeScoreClampedToZero(t *testing.T) {
	emb := embedder.NewMockEmbedder()
	emb.SetFixedEmbedding("inverse question inverse", []float64{-1, 0, 0})

	b := loadBank(t, emb, []bank.SourceRecord{
		{CanonicalQuestion: "inverse question", QueryPattern: "MATCH (n) RETURN n", Description: "inverse"},
	})

	tmpl, score := NewCosineMatcher().BestMatch([]float64{1, 0, 0}, b)
	require.NotNil(t, tmpl, "non-empty bank always yields a template")
	assert.Zero(t, score)
}
