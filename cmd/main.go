// Package main provides the CLI entrypoint for the BangSafe service.
// It wires subcommands (serve, migrate, score), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bangsafe/internal/config"
	"bangsafe/pkg/logger"
)

// app carries state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	configPath string
	cfg        *config.Config
}

// newRootCommand sets up the root Cobra command. Configuration and logging are
// initialized before any subcommand runs.
func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bangsafe",
		Short:         "Scores URLs for phishing risk and collects abuse reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			if err = logger.Setup(cfg.Environment, cfg.Log.Level); err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}
			a.cfg = cfg

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(a),
		migrateCommand(a),
		scoreCommand(a),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
