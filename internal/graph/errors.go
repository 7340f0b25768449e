package graph

import "github.com/Snickdx/project-graph/internal/types"

// Graph database error codes
const (
	ErrCodeGraphConnectionFailed types.ErrorCode = "GRAPH_CONNECTION_FAILED"
	ErrCodeGraphConnectionClosed types.ErrorCode = "GRAPH_CONNECTION_CLOSED"
	ErrCodeGraphInvalidConfig    types.ErrorCode = "GRAPH_INVALID_CONFIG"
	ErrCodeGraphQueryFailed      types.ErrorCode = types.EXECUTION_FAILED
)
