package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Snickdx/project-graph/internal/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "graphq",
	Short: "Ask natural-language questions over the project graph",
	Long: `graphq answers natural-language questions over the project knowledge
graph. Common questions are matched to pre-built Cypher templates by
embedding similarity and executed directly; everything else is handled by
a reasoning fallback model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(healthCmd)
}

// loadConfig loads configuration layered over defaults and configures the
// process logger.
func loadConfig() (*config.Config, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return config.NewLoader(config.NewValidator()).LoadWithDefaults(configPath)
}
