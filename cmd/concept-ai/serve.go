package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/utkarshrajputt/concept-ai/pkg/api"
	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/provider"
	"github.com/utkarshrajputt/concept-ai/pkg/service"
	"github.com/utkarshrajputt/concept-ai/pkg/store/sqlite"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the explanation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			log := newLogger()

			store, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			router := provider.NewRouter(cfg, log)
			svc := service.New(store, router, log)
			server := api.New(cfg, svc, store, log)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "concept-ai.yaml", "path to config file")
	return cmd
}
