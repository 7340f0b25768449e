package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Snickdx/project-graph/internal/embedder"
	"github.com/Snickdx/project-graph/internal/fallback"
	"github.com/Snickdx/project-graph/internal/graph"
	"github.com/Snickdx/project-graph/internal/types"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check embedding, graph, and fallback connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		emb, err := embedder.New(cfg.Embedder)
		if err != nil {
			return err
		}
		embHealth := emb.Health(ctx)
		printHealth("embedder", embHealth)

		graphHealth := types.Unhealthy("not connected")
		executor, err := graph.NewNeo4jClient(cfg.Graph)
		if err == nil {
			if err := executor.Connect(ctx); err == nil {
				graphHealth = executor.Health(ctx)
				defer executor.Close(ctx)
			} else {
				graphHealth = types.Unhealthy(err.Error())
			}
		} else {
			graphHealth = types.Unhealthy(err.Error())
		}
		printHealth("graph", graphHealth)

		fbHealth := types.Unhealthy("not configured")
		if reasoner, err := fallback.New(cfg.Fallback); err == nil {
			fbHealth = reasoner.Health(ctx)
		} else {
			fbHealth = types.Unhealthy(err.Error())
		}
		printHealth("fallback", fbHealth)

		templatePath := embHealth.IsHealthy() && graphHealth.IsHealthy()
		switch {
		case templatePath && fbHealth.IsHealthy():
			fmt.Println("\noverall: healthy")
		case templatePath || fbHealth.IsHealthy():
			fmt.Println("\noverall: degraded")
			return nil
		default:
			fmt.Println("\noverall: unhealthy")
			return fmt.Errorf("no resolution path available")
		}
		return nil
	},
}

func printHealth(name string, h types.HealthStatus) {
	fmt.Printf("%-10s %-10s %s\n", name, h.State, h.Message)
}
