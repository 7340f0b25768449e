// Package matcher selects the best-matching template for a query
// embedding. The brute-force implementation scans every template in the
// bank, which is O(bank size x dimensions) per query; fine for the tens of
// templates this system carries. The Matcher interface exists so an
// approximate-nearest-neighbor index can replace it without touching
// callers if the bank ever grows by orders of magnitude.
package matcher

import (
	"math"

	"github.com/Snickdx/project-graph/internal/bank"
)

// Matcher finds the best template for a query embedding.
type Matcher interface {
	// BestMatch returns the highest-scoring template and its cosine
	// similarity in [0,1]. Returns (nil, 0.0) only for an empty bank;
	// it never fails for a non-empty bank.
	BestMatch(queryEmbedding []float64, b *bank.Bank) (*bank.Template, float64)
}

// CosineMatcher is a brute-force Matcher using cosine similarity.
// Stateless and safe for concurrent use.
type CosineMatcher struct{}

// NewCosineMatcher creates a brute-force cosine similarity matcher.
func NewCosineMatcher() *CosineMatcher {
	return &CosineMatcher{}
}

// BestMatch scans the bank for the template with the highest cosine
// similarity to queryEmbedding. On an exact score tie the template whose
// key sorts first lexicographically wins, so repeated calls are
// deterministic. Ties are rare with high-dimensional embeddings but
// determinism matters for reproducibility.
func (m *CosineMatcher) BestMatch(queryEmbedding []float64, b *bank.Bank) (*bank.Template, float64) {
	var best *bank.Template
	bestScore := 0.0

	// Bank templates are sorted by key, so taking only strict improvements
	// leaves the lexicographically first key as the winner on ties.
	for _, tmpl := range b.All() {
		score := CosineSimilarity(queryEmbedding, tmpl.Embedding)
		if best == nil || score > bestScore {
			t := tmpl
			best = &t
			bestScore = score
		}
	}

	if best == nil {
		return nil, 0.0
	}
	// Scores are reported in [0,1]; anti-correlated embeddings clamp to 0
	// and will never clear a sane confidence threshold anyway.
	if bestScore < 0 {
		bestScore = 0
	}
	return best, bestScore
}

// CosineSimilarity computes the cosine similarity between two embedding
// vectors: (a . b) / (||a|| * ||b||). Returns 0 when the vectors differ in
// length or either has zero norm, guarding against degenerate embeddings
// rather than raising a numeric fault.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
