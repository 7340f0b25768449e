package router

import "time"

// Method identifies which path produced a response.
type Method string

const (
	// MethodTemplate means a confident template match was executed
	// against the graph.
	MethodTemplate Method = "template"

	// MethodFallback means the reasoning fallback produced the answer,
	// either because no template cleared the threshold or because the
	// template path failed downstream.
	MethodFallback Method = "fallback"

	// MethodError means both paths failed; Answer carries a stable,
	// user-safe message.
	MethodError Method = "error"
)

// Envelope is the uniform response returned for every question.
//
// Invariants: Method == MethodTemplate implies SourceTemplateKey is set and
// Confidence cleared the configured threshold. Method == MethodFallback
// implies either no template was confident enough or template execution
// failed (DegradedFromTemplate is then true).
type Envelope struct {
	// RequestID correlates the response with log lines and traces.
	RequestID string `json:"request_id"`

	// Question echoes the question as asked.
	Question string `json:"question"`

	// Answer is the human-readable answer text.
	Answer string `json:"answer"`

	// Rows carries the raw result rows for template answers.
	Rows []map[string]any `json:"rows,omitempty"`

	// Method identifies the path that produced the answer.
	Method Method `json:"method"`

	// Confidence is the best template similarity observed, in [0,1].
	Confidence float64 `json:"confidence"`

	// LatencyMS is wall-clock time from request start to completion.
	LatencyMS float64 `json:"latency_ms"`

	// SourceTemplateKey names the executed template, when Method is template.
	SourceTemplateKey string `json:"source_template_key,omitempty"`

	// DegradedFromTemplate marks fallback responses that started as a
	// confident template match and failed downstream.
	DegradedFromTemplate bool `json:"degraded_from_template,omitempty"`

	// diagnostics is internal context for logs; never serialized and
	// never echoed to callers.
	diagnostics []string
}

// Diagnostics returns internal diagnostic context for logging.
func (e Envelope) Diagnostics() []string {
	out := make([]string, len(e.diagnostics))
	copy(out, e.diagnostics)
	return out
}

// finish stamps the latency and returns the envelope by value.
func (e Envelope) finish(start time.Time) Envelope {
	e.LatencyMS = float64(time.Since(start).Microseconds()) / 1000.0
	return e
}
