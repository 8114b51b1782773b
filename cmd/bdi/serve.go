package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitk-cp/bdi/internal/api"
	"github.com/Harshitk-cp/bdi/internal/config"
	"github.com/Harshitk-cp/bdi/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host agents over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			client, err := newReasoningClient(logger)
			if err != nil {
				return err
			}

			agents := service.NewAgentService(client, service.NewActionRegistry(nil), logger)
			app := api.NewApp(agents, logger)

			reaper := service.NewReaperService(agents, config.AgentIdleTTL(), logger)
			reaper.Start()
			defer reaper.Stop()

			if addr == "" {
				addr = config.ServerAddr()
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           app.Router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("server starting", zap.String("addr", addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			select {
			case err := <-serveErr:
				logger.Error("server failed", zap.Error(err))
				return err
			case <-quit:
			}
			logger.Info("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server forced to shutdown", zap.Error(err))
				return err
			}

			logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :SERVER_PORT)")
	return cmd
}
