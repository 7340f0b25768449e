package fallback

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"

	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/types"
)

const systemPrompt = "You answer questions about a software project knowledge graph. " +
	"Answer concisely from the schema and the question alone. " +
	"If the question cannot be answered from the graph, say so."

// OllamaReasoner implements Reasoner using a local Ollama chat model.
type OllamaReasoner struct {
	client      *ollama.LLM
	model       string
	temperature float64
}

// NewOllamaReasoner creates a reasoner backed by an Ollama server.
func NewOllamaReasoner(cfg config.FallbackConfig) (*OllamaReasoner, error) {
	serverURL := cfg.BaseURL
	if serverURL == "" {
		serverURL = "http://localhost:11434"
	}

	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
	}
	if cfg.Model != "" {
		opts = append(opts, ollama.WithModel(cfg.Model))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, types.WrapError(ErrCodeFallbackUnavailable,
			"failed to create ollama fallback client", err)
	}

	return &OllamaReasoner{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Answer produces a free-form answer for the question.
func (r *OllamaReasoner) Answer(ctx context.Context, question string, schemaContext string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, buildPrompt(question, schemaContext)),
	}

	resp, err := r.client.GenerateContent(ctx, messages, llms.WithTemperature(r.temperature))
	if err != nil {
		return "", types.WrapError(ErrCodeFallbackFailed, "ollama fallback call failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", types.NewError(ErrCodeFallbackFailed, "ollama returned no choices")
	}

	answer := strings.TrimSpace(resp.Choices[0].Content)
	if answer == "" {
		return "", types.NewError(ErrCodeFallbackFailed, "ollama returned an empty answer")
	}
	return answer, nil
}

// Health checks the provider with a minimal completion.
func (r *OllamaReasoner) Health(ctx context.Context) types.HealthStatus {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, "ping"),
	}
	if _, err := r.client.GenerateContent(ctx, messages, llms.WithMaxTokens(1)); err != nil {
		return types.Unhealthy(err.Error())
	}
	return types.Healthy(fmt.Sprintf("ollama fallback operational (model: %s)", r.model))
}

// buildPrompt assembles the user prompt, including the schema description
// when one is configured.
func buildPrompt(question string, schemaContext string) string {
	if schemaContext == "" {
		return "Question: " + question
	}
	return "Graph schema: " + schemaContext + "\n\nQuestion: " + question
}
