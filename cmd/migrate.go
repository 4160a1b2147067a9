package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bangsafe/pkg/logger"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the configured SQL storage to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, err := openStorage(ctx, a.cfg)
			if err != nil {
				return fmt.Errorf("could not open storage: %w", err)
			}
			defer closeStorage(ctx, strg)

			if err = migrateStorage(ctx, a.cfg, strg); err != nil {
				return err
			}
			logger.Info(ctx, "storage migrated", zap.String("driver", a.cfg.Storage.Driver))

			return nil
		},
	}

	return cmd
}
