package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bangsafe/internal/api"
	"bangsafe/internal/config"
	"bangsafe/internal/scanner"
	"bangsafe/pkg/logger"
	"bangsafe/pkg/metrics"
	"bangsafe/pkg/storage"
)

// setupServer binds cfg.HTTP.Addr and starts serving in the background.
// Serve failures after a successful bind are delivered on the returned channel.
func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage) (func(ctx context.Context), <-chan error, error) {
	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not listen on %s: %w", cfg.HTTP.Addr, err)
	}

	mp, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		_ = ln.Close()

		return nil, nil, err
	}
	instruments, err := metrics.New(mp.Meter(metrics.MeterName))
	if err != nil {
		_ = ln.Close()

		return nil, nil, fmt.Errorf("could not create instruments: %w", err)
	}

	server, err := api.NewServer(api.Deps{
		Scanner:       scanner.New(strg, scanner.Options{Metrics: instruments}),
		MeterProvider: mp,
	}, api.NewOptions(cfg))
	if err != nil {
		_ = ln.Close()

		return nil, nil, fmt.Errorf("could not create webserver: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not serve: %w", err)
		}
		close(errCh)
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}, errCh, nil
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, err := openStorage(ctx, a.cfg)
			if err != nil {
				return fmt.Errorf("could not open storage: %w", err)
			}
			defer closeStorage(context.Background(), strg)

			if a.cfg.Storage.AutoMigrate {
				if err = migrateStorage(ctx, a.cfg, strg); err != nil {
					return fmt.Errorf("could not migrate storage: %w", err)
				}
			}

			stopWebserver, serveErr, err := setupServer(ctx, a.cfg, strg)
			if err != nil {
				return fmt.Errorf("could not setup webserver: %w", err)
			}

			// wait for interrupt or a serve failure
			select {
			case <-ctx.Done():
			case err = <-serveErr:
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()
			stopWebserver(shutdownCtx)

			return err
		},
	}

	return cmd
}
