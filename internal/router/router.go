package router

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Snickdx/project-graph/internal/bank"
	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/embedder"
	"github.com/Snickdx/project-graph/internal/fallback"
	"github.com/Snickdx/project-graph/internal/graph"
	"github.com/Snickdx/project-graph/internal/matcher"
	"github.com/Snickdx/project-graph/internal/types"
)

// userSafeErrorMessage is the stable message returned when both paths
// fail. Internal diagnostics are logged, never returned.
const userSafeErrorMessage = "Sorry, we couldn't answer your question right now. Please try again later."

// state labels for the per-request state machine, used in logs.
type state string

const (
	stateEmbedding    state = "EMBEDDING"
	stateMatching     state = "MATCHING"
	stateTemplateExec state = "TEMPLATE_EXEC"
	stateFallbackExec state = "FALLBACK_EXEC"
	stateDone         state = "DONE"
	stateError        state = "ERROR"
)

// Router routes each question to the cheapest adequate resolution path.
// Stateless per request and safe for concurrent use; the only shared state
// is the bank pointer, which is swapped atomically on reload.
type Router struct {
	cfg           config.RouterConfig
	embedder      embedder.Embedder
	matcher       matcher.Matcher
	executor      graph.Client
	reasoner      fallback.Reasoner
	schemaContext string
	logger        *slog.Logger

	bank atomic.Pointer[bank.Bank]
}

// Option configures optional router behavior.
type Option func(*Router)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// WithMatcher replaces the default brute-force cosine matcher, e.g. with
// an ANN-backed implementation for much larger banks.
func WithMatcher(m matcher.Matcher) Option {
	return func(r *Router) { r.matcher = m }
}

// WithSchemaContext sets the schema description passed to the reasoning
// fallback.
func WithSchemaContext(schema string) Option {
	return func(r *Router) { r.schemaContext = schema }
}

// New creates a Router over a loaded template bank and its collaborators.
func New(cfg config.RouterConfig, b *bank.Bank, emb embedder.Embedder, executor graph.Client, reasoner fallback.Reasoner, opts ...Option) *Router {
	r := &Router{
		cfg:      cfg,
		embedder: emb,
		matcher:  matcher.NewCosineMatcher(),
		executor: executor,
		reasoner: reasoner,
		logger:   slog.Default(),
	}
	r.bank.Store(b)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bank returns the current bank snapshot.
func (r *Router) Bank() *bank.Bank {
	return r.bank.Load()
}

// ReloadBank rebuilds the bank from new source records and swaps it in
// atomically. Requests in flight keep the snapshot they started with; a
// failed rebuild leaves the old bank serving.
func (r *Router) ReloadBank(ctx context.Context, sources []bank.SourceRecord) error {
	fresh, err := bank.Load(ctx, r.embedder, sources)
	if err != nil {
		return err
	}
	old := r.bank.Swap(fresh)
	r.logger.Info("template bank reloaded",
		slog.Int("templates", fresh.Size()),
		slog.Int("previous", old.Size()))
	return nil
}

// Handle answers one question. It never returns an error: every failure is
// converted into a routing decision, terminating at worst in an envelope
// with MethodError and a user-safe message.
func (r *Router) Handle(ctx context.Context, rawText string) Envelope {
	start := time.Now()
	b := r.bank.Load()

	env := Envelope{
		RequestID: uuid.NewString(),
		Question:  rawText,
		Method:    MethodFallback,
	}
	logger := r.logger.With(slog.String("request_id", env.RequestID))

	// Normalization is for matching only; the fallback prompt keeps the
	// original casing.
	normalized := strings.ToLower(strings.TrimSpace(rawText))

	// EMBEDDING
	logger.Debug("state transition", slog.String("state", string(stateEmbedding)))
	queryEmbedding, err := r.embed(ctx, normalized)
	if err != nil {
		// An embedding failure must not abort the request while a
		// fallback path exists.
		logger.Warn("embedding failed, demoting to fallback", slog.Any("error", err))
		env.diagnostics = append(env.diagnostics, fmt.Sprintf("embedding failed: %v", err))
		return r.runFallback(ctx, logger, env, start)
	}

	// MATCHING
	logger.Debug("state transition", slog.String("state", string(stateMatching)))
	tmpl, score := r.matcher.BestMatch(queryEmbedding, b)
	env.Confidence = score

	if tmpl == nil || score < r.cfg.ConfidenceThreshold {
		if tmpl != nil {
			logger.Info("no confident template match",
				slog.String("best_template", tmpl.Key),
				slog.Float64("similarity", score),
				slog.Float64("threshold", r.cfg.ConfidenceThreshold))
		}
		return r.runFallback(ctx, logger, env, start)
	}

	logger.Info("confident template match",
		slog.String("template", tmpl.Key),
		slog.Float64("similarity", score))

	// Bind placeholders before execution; unresolved required parameters
	// demote to fallback instead of letting storage reject a malformed
	// query late.
	bindings, err := bindParams(tmpl.Params, rawText)
	if err != nil {
		logger.Info("placeholder binding failed, demoting to fallback",
			slog.String("template", tmpl.Key),
			slog.Any("error", err))
		env.diagnostics = append(env.diagnostics, fmt.Sprintf("binding failed: %v", err))
		return r.runFallback(ctx, logger, env, start)
	}

	// TEMPLATE_EXEC
	logger.Debug("state transition", slog.String("state", string(stateTemplateExec)))
	result, err := r.execute(ctx, tmpl.QueryPattern, bindings)
	if err != nil {
		logger.Warn("template execution failed, demoting to fallback",
			slog.String("template", tmpl.Key),
			slog.Any("error", err))
		env.DegradedFromTemplate = true
		env.diagnostics = append(env.diagnostics, fmt.Sprintf("template %s execution failed: %v", tmpl.Key, err))
		return r.runFallback(ctx, logger, env, start)
	}

	env.Method = MethodTemplate
	env.SourceTemplateKey = tmpl.Key
	env.Rows = result.Records
	env.Answer = formatRows(result, r.cfg.MaxRows)

	logger.Debug("state transition", slog.String("state", string(stateDone)))
	logger.Info("request served",
		slog.String("method", string(MethodTemplate)),
		slog.String("template", tmpl.Key),
		slog.Int("rows", len(result.Records)))
	return env.finish(start)
}

// Health aggregates adapter health. The router is degraded when any single
// path is down and unhealthy when it cannot answer at all.
func (r *Router) Health(ctx context.Context) types.HealthStatus {
	embHealth := r.embedder.Health(ctx)
	graphHealth := r.executor.Health(ctx)
	fbHealth := r.reasoner.Health(ctx)

	templatePath := embHealth.IsHealthy() && graphHealth.IsHealthy()
	fallbackPath := fbHealth.IsHealthy()

	switch {
	case templatePath && fallbackPath:
		return types.Healthy(fmt.Sprintf("all paths operational (%d templates)", r.bank.Load().Size()))
	case fallbackPath:
		return types.Degraded("template path down, serving fallback only")
	case templatePath:
		return types.Degraded("fallback path down, serving templates only")
	default:
		return types.Unhealthy("both template and fallback paths down")
	}
}

// embed runs the embedding call under its configured timeout.
func (r *Router) embed(ctx context.Context, text string) ([]float64, error) {
	embedCtx, cancel := context.WithTimeout(ctx, r.cfg.EmbedTimeout)
	defer cancel()

	vec, err := r.embedder.Embed(embedCtx, text)
	if err != nil {
		return nil, types.WrapError(types.EMBEDDING_FAILED, "query embedding failed", err)
	}
	return vec, nil
}

// execute runs a bound template query under its configured timeout.
// A result with rows but no columns indicates schema drift and is treated
// as an execution failure.
func (r *Router) execute(ctx context.Context, cypher string, bindings map[string]any) (graph.QueryResult, error) {
	execCtx, cancel := context.WithTimeout(ctx, r.cfg.ExecuteTimeout)
	defer cancel()

	result, err := r.executor.Query(execCtx, cypher, bindings)
	if err != nil {
		return graph.QueryResult{}, types.WrapError(types.EXECUTION_FAILED, "graph query failed", err)
	}
	if len(result.Records) > 0 && len(result.Columns) == 0 {
		return graph.QueryResult{}, types.NewError(types.EXECUTION_FAILED,
			"query returned rows without columns")
	}
	return result, nil
}

// runFallback invokes the reasoning fallback and assembles the terminal
// envelope. This is the FALLBACK_EXEC state; a failure here is terminal
// for the request.
func (r *Router) runFallback(ctx context.Context, logger *slog.Logger, env Envelope, start time.Time) Envelope {
	logger.Debug("state transition", slog.String("state", string(stateFallbackExec)))

	fbCtx, cancel := context.WithTimeout(ctx, r.cfg.FallbackTimeout)
	defer cancel()

	answer, err := r.reasoner.Answer(fbCtx, env.Question, r.schemaContext)
	if err != nil {
		logger.Error("fallback failed, request terminal",
			slog.Any("error", err),
			slog.Any("diagnostics", env.diagnostics))
		logger.Debug("state transition", slog.String("state", string(stateError)))

		env.Method = MethodError
		env.Answer = userSafeErrorMessage
		env.diagnostics = append(env.diagnostics, fmt.Sprintf("fallback failed: %v", err))
		return env.finish(start)
	}

	env.Method = MethodFallback
	env.Answer = answer

	logger.Debug("state transition", slog.String("state", string(stateDone)))
	logger.Info("request served",
		slog.String("method", string(MethodFallback)),
		slog.Bool("degraded_from_template", env.DegradedFromTemplate))
	return env.finish(start)
}

// formatRows renders query rows as readable text, capped at maxRows rows.
// Column order follows the result's column list so output is stable.
func formatRows(result graph.QueryResult, maxRows int) string {
	if result.Empty() {
		return "No results found."
	}

	shown := result.Records
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s):", len(result.Records))
	for _, record := range shown {
		values := rowValues(record, result.Columns)
		if len(values) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(values, " | "))
	}
	return sb.String()
}

// rowValues extracts non-nil values from a record in column order, falling
// back to sorted keys when the result carries no column list.
func rowValues(record map[string]any, columns []string) []string {
	keys := columns
	if len(keys) == 0 {
		keys = make([]string, 0, len(record))
		for k := range record {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		v, ok := record[key]
		if !ok || v == nil {
			continue
		}
		values = append(values, fmt.Sprintf("%v", v))
	}
	return values
}
