// Package graph adapts the graph storage engine behind a query-executing
// interface. The router hands it a parametrized Cypher string plus
// bindings and gets tabular rows back; everything else about the store is
// out of scope.
package graph

import (
	"context"
	"time"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

// Client executes bound graph queries. Implementations must be thread-safe
// for concurrent access.
type Client interface {
	// Connect establishes a connection to the graph database.
	Connect(ctx context.Context) error

	// Close releases all resources and closes the database connection.
	Close(ctx context.Context) error

	// Health returns the current health status of the connection.
	Health(ctx context.Context) types.HealthStatus

	// Query executes a Cypher query with the given parameters.
	// Fails with EXECUTION_FAILED on connectivity loss or malformed query.
	Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error)
}

// QueryResult represents the result of a Cypher query execution.
type QueryResult struct {
	// Records contains the result rows as maps of column name to value.
	Records []map[string]any

	// Columns contains the names of the columns in the result set.
	Columns []string

	// ExecutionTime is the duration of query execution.
	ExecutionTime time.Duration
}

// Empty reports whether the result carries no rows.
func (r QueryResult) Empty() bool {
	return len(r.Records) == 0
}

// Validate checks a graph configuration before a client is built from it.
func Validate(cfg config.GraphConfig) error {
	if cfg.URI == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "URI cannot be empty")
	}
	if cfg.Username == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "Username cannot be empty")
	}
	if cfg.ConnectionTimeout <= 0 {
		return types.NewError(ErrCodeGraphInvalidConfig, "ConnectionTimeout must be positive")
	}
	return nil
}
