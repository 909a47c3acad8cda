package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"registry/internal/api"
	"registry/internal/api/handler/v1handler"
	"registry/internal/config"
	"registry/internal/worker"
	"registry/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, a *app) func(ctx context.Context) {
	deps := api.Deps{
		Deps: v1handler.Deps{
			Auth:   a.auth,
			Perfil: a.perfil,
		},
	}
	if a.sessions != nil {
		deps.Sessions = a.sessions
	}

	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server, and the background workers unless --no-worker is set",
		Run: func(cmd *cobra.Command, args []string) {
			noWorker, _ := cmd.Flags().GetBool("no-worker")
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, closeApp := newApp(ctx, cfg)
			defer closeApp()

			stopWorker := func(context.Context) {}
			if !noWorker {
				stopWorker = setupWorker(ctx, cfg, a)
			}
			stopWebserver := setupServer(ctx, cfg, a)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}
	cmd.Flags().Bool("no-worker", false, "Do not process background jobs in this process")

	return cmd
}

func setupWorker(ctx context.Context, cfg *config.Config, a *app) func(ctx context.Context) {
	client, err := worker.Start(ctx, a.storage.Pool, a.files, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started", zap.Int("max_workers", cfg.Worker.MaxWorkers))

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func workerCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Starts the background workers only",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, closeApp := newApp(ctx, cfg)
			defer closeApp()

			stopWorker := setupWorker(ctx, cfg, a)

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWorker(shutdownCtx)
		},
	}
}
