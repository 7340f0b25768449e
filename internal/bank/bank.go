// Package bank holds the template bank: the canonical set of
// question-to-Cypher mappings and their precomputed embeddings.
//
// A Bank is immutable after Load. Hot reload is done by building a fresh
// Bank and swapping the reference atomically at the router; entries are
// never mutated in place while requests may be reading them.
package bank

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Snickdx/project-graph/internal/embedder"
	"github.com/Snickdx/project-graph/internal/types"
)

// paramPattern matches Cypher query parameters like $area or $node_id.
var paramPattern = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// Template is one canonical question with its parametrized Cypher query
// and precomputed embedding. Immutable once loaded.
type Template struct {
	// Key is a stable slug of the canonical question, unique within a bank.
	Key string `json:"key"`

	// CanonicalQuestion is the question this template answers.
	CanonicalQuestion string `json:"canonical_question"`

	// QueryPattern is a Cypher query, optionally containing $name
	// parameters that must be bound before execution.
	QueryPattern string `json:"query_pattern"`

	// Description summarizes what the query returns. It is embedded
	// together with the canonical question to sharpen matching.
	Description string `json:"description"`

	// Params lists the $name parameters appearing in QueryPattern,
	// sorted. All of them must be bound before execution.
	Params []string `json:"params,omitempty"`

	// Embedding is the vector for CanonicalQuestion + Description,
	// computed once at load time.
	Embedding []float64 `json:"-"`
}

// embedText is the text actually embedded for a template. Matching the
// question alone loses too much signal for short questions, so the
// description is appended, same as the upstream template bank.
func (t Template) embedText() string {
	if t.Description == "" {
		return t.CanonicalQuestion
	}
	return t.CanonicalQuestion + " " + t.Description
}

// Bank is an immutable, loaded template bank.
type Bank struct {
	templates []Template // sorted by Key
	byKey     map[string]int
	dims      int
	model     string
}

// Load builds a Bank from source records. All canonical questions are
// embedded in a single batch call; any provider error fails the whole
// load. A partially embedded bank would silently mismatch at query time,
// which is worse than a hard failure at boot.
func Load(ctx context.Context, emb embedder.Embedder, sources []SourceRecord) (*Bank, error) {
	if len(sources) == 0 {
		return &Bank{byKey: map[string]int{}, model: emb.Model()}, nil
	}

	templates := make([]Template, 0, len(sources))
	byKey := make(map[string]int, len(sources))
	texts := make([]string, 0, len(sources))

	for i, src := range sources {
		if err := src.Validate(); err != nil {
			return nil, types.WrapError(types.BANK_LOAD_FAILED,
				fmt.Sprintf("invalid template source at index %d", i), err)
		}

		tmpl := Template{
			Key:               Slug(src.CanonicalQuestion),
			CanonicalQuestion: src.CanonicalQuestion,
			QueryPattern:      src.QueryPattern,
			Description:       src.Description,
			Params:            extractParams(src.QueryPattern),
		}

		if _, dup := byKey[tmpl.Key]; dup {
			return nil, types.NewError(types.BANK_LOAD_FAILED,
				fmt.Sprintf("duplicate template key %q (canonical question: %q)", tmpl.Key, src.CanonicalQuestion))
		}

		byKey[tmpl.Key] = len(templates)
		templates = append(templates, tmpl)
		texts = append(texts, tmpl.embedText())
	}

	embeddings, err := emb.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, types.WrapError(types.BANK_LOAD_FAILED,
			fmt.Sprintf("embedding batch failed for %d templates", len(texts)), err)
	}
	if len(embeddings) != len(templates) {
		return nil, types.NewError(types.BANK_LOAD_FAILED,
			fmt.Sprintf("embedder returned %d vectors for %d templates", len(embeddings), len(templates)))
	}

	dims := len(embeddings[0])
	if dims == 0 {
		return nil, types.NewError(types.BANK_LOAD_FAILED, "embedder returned zero-length vectors")
	}
	for i, e := range embeddings {
		if len(e) != dims {
			return nil, types.NewError(types.BANK_LOAD_FAILED,
				fmt.Sprintf("template %q: embedding dimensions mismatch: expected %d, got %d",
					templates[i].Key, dims, len(e)))
		}
		templates[i].Embedding = e
	}

	// Keep templates sorted by key so iteration order is deterministic.
	sort.Slice(templates, func(i, j int) bool { return templates[i].Key < templates[j].Key })
	for i := range templates {
		byKey[templates[i].Key] = i
	}

	return &Bank{
		templates: templates,
		byKey:     byKey,
		dims:      dims,
		model:     emb.Model(),
	}, nil
}

// All returns a read-only snapshot of the templates, sorted by key.
// The backing storage is never exposed for mutation.
func (b *Bank) All() []Template {
	out := make([]Template, len(b.templates))
	copy(out, b.templates)
	return out
}

// Get returns the template with the given key, if present.
func (b *Bank) Get(key string) (Template, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return Template{}, false
	}
	return b.templates[i], true
}

// Size returns the number of templates in the bank.
func (b *Bank) Size() int {
	return len(b.templates)
}

// Dimensions returns the embedding dimensionality of the bank, or 0 for an
// empty bank.
func (b *Bank) Dimensions() int {
	return b.dims
}

// Model returns the embedding model the bank was built with. Query-time
// embeddings must come from the same model.
func (b *Bank) Model() string {
	return b.model
}

// Slug derives a stable template key from a canonical question:
// lowercase, with runs of non-alphanumeric characters collapsed to "-".
func Slug(question string) string {
	var sb strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(question)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// extractParams returns the sorted set of $name parameters in a query pattern.
func extractParams(pattern string) []string {
	matches := paramPattern.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		params = append(params, m[1])
	}
	sort.Strings(params)
	return params
}
