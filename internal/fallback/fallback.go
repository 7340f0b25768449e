// Package fallback adapts the general-purpose reasoning model used when no
// Cypher template is confident enough. The router treats it as a black
// box: question in, free-form answer out, with a declared failure mode.
package fallback

import (
	"context"

	"github.com/Snickdx/project-graph/internal/types"
)

// Reasoner answers questions the template bank cannot.
// Implementations must be thread-safe for concurrent access.
type Reasoner interface {
	// Answer produces a free-form answer for the question. schemaContext,
	// when non-empty, describes the graph schema so the model can reason
	// about labels and relationships it cannot see. Fails with
	// FALLBACK_FAILED on provider unavailability.
	Answer(ctx context.Context, question string, schemaContext string) (string, error)

	// Health returns the health status of the reasoner.
	Health(ctx context.Context) types.HealthStatus
}

// Fallback error codes
const (
	ErrCodeFallbackFailed      types.ErrorCode = types.FALLBACK_FAILED
	ErrCodeFallbackUnavailable types.ErrorCode = "FALLBACK_UNAVAILABLE"
	ErrCodeInvalidConfig       types.ErrorCode = "INVALID_FALLBACK_CONFIG"
)
