package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/store/sqlite"
)

func newSuggestCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List recently cached topics",
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

			topics, err := store.Suggestions(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(topics) == 0 {
				fmt.Println("No cached topics yet.")
				return nil
			}
			for _, t := range topics {
				fmt.Println(t)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "concept-ai.yaml", "path to config file")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum topics to list")
	return cmd
}
