package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Snickdx/project-graph/internal/bank"
	"github.com/Snickdx/project-graph/internal/config"
	"github.com/Snickdx/project-graph/internal/embedder"
	"github.com/Snickdx/project-graph/internal/fallback"
	"github.com/Snickdx/project-graph/internal/graph"
	"github.com/Snickdx/project-graph/internal/router"
)

var (
	templatesPath string
	jsonOutput    bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		r, cleanup, err := buildRouter(cmd, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		question := strings.Join(args, " ")
		env := r.Handle(cmd.Context(), question)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		}

		fmt.Println(env.Answer)
		fmt.Printf("\n[method: %s", env.Method)
		if env.SourceTemplateKey != "" {
			fmt.Printf(" | template: %s", env.SourceTemplateKey)
		}
		fmt.Printf(" | confidence: %.3f | %.1fms]\n", env.Confidence, env.LatencyMS)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&templatesPath, "templates", "t", "", "JSON file of template sources (default: built-in seed set)")
	askCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw response envelope as JSON")
}

// buildRouter wires the real adapters from configuration. The returned
// cleanup closes the graph connection.
func buildRouter(cmd *cobra.Command, cfg *config.Config) (*router.Router, func(), error) {
	ctx := cmd.Context()

	emb, err := embedder.New(cfg.Embedder)
	if err != nil {
		return nil, nil, err
	}

	sources := bank.SeedSources()
	if templatesPath != "" {
		sources, err = bank.LoadSourceFile(templatesPath)
		if err != nil {
			return nil, nil, err
		}
	}

	// Bank load failure is fatal: a bank without valid embeddings cannot
	// serve, and a partial bank would mismatch silently.
	b, err := bank.Load(ctx, emb, sources)
	if err != nil {
		return nil, nil, err
	}

	executor, err := graph.NewNeo4jClient(cfg.Graph)
	if err != nil {
		return nil, nil, err
	}
	if err := executor.Connect(ctx); err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = executor.Close(ctx) }

	reasoner, err := fallback.New(cfg.Fallback)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	r := router.New(cfg.Router, b, emb, executor, reasoner,
		router.WithSchemaContext(cfg.Fallback.SchemaContext))
	return r, cleanup, nil
}
