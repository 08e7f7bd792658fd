package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/store/sqlite"
)

func newAnalyticsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show explanation cache analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			store, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			a, err := store.Analytics(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Total explanations: %d\n\n", a.TotalExplanations)

			if len(a.PopularTopics) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "TOPIC\tCOUNT")
				for _, tc := range a.PopularTopics {
					fmt.Fprintf(w, "%s\t%d\n", tc.Topic, tc.Count)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Println()
			}

			if len(a.LevelDistribution) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "LEVEL\tCOUNT")
				for _, lc := range a.LevelDistribution {
					fmt.Fprintf(w, "%s\t%d\n", lc.Level, lc.Count)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Println()
			}

			if len(a.RecentActivity) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "DATE\tWRITES")
				for _, dc := range a.RecentActivity {
					fmt.Fprintf(w, "%s\t%d\n", dc.Date, dc.Count)
				}
				return w.Flush()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "concept-ai.yaml", "path to config file")
	return cmd
}
