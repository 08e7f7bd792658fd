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

func newCacheCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the explanation cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
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

			stats, err := store.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Cached: %d\n", stats.Entries)
			for level, count := range stats.ByLevel {
				fmt.Printf("  %-10s %d\n", level, count)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached explanations",
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

			if err := store.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("All cached explanations cleared.")
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <topic> <level>",
		Short: "Delete one cached explanation by topic and level",
		Args:  cobra.ExactArgs(2),
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

			n, err := store.Delete(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Println("No matching cache entry found.")
				return nil
			}
			fmt.Printf("Deleted %d entry.\n", n)
			return nil
		},
	}

	var listLimit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cached explanations",
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

			entries, err := store.List(context.Background(), listLimit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Cache is empty.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TOPIC\tLEVEL\tCREATED")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Topic, e.Level, e.CreatedAt.Format("2006-01-02T15:04:05"))
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum entries to list")

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "concept-ai.yaml", "path to config file")
	cmd.AddCommand(statsCmd, clearCmd, deleteCmd, listCmd)
	return cmd
}
