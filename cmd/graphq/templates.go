package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Snickdx/project-graph/internal/bank"
)

var templatesFile string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the query templates the router can match",
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := bank.SeedSources()
		if templatesFile != "" {
			var err error
			sources, err = bank.LoadSourceFile(templatesFile)
			if err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tQUESTION\tDESCRIPTION")
		for _, s := range sources {
			fmt.Fprintf(w, "%s\t%s\t%s\n", bank.Slug(s.CanonicalQuestion), s.CanonicalQuestion, s.Description)
		}
		return w.Flush()
	},
}

func init() {
	templatesCmd.Flags().StringVarP(&templatesFile, "templates", "t", "", "JSON file of template sources (default: built-in seed set)")
}
