package main

import (
	"context"
	"fmt"
	"notes-api/config/setup"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Bootstrap the schema and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Schema must exist before the first request is accepted
		db, err := setup.InitDatabase(cmd.Context(), cfg, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			return err
		}

		application := setup.InitApp(db, logger)
		fiberApp := setup.NewServer(cfg, application)

		logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

		listenErr := make(chan error, 1)
		go func() {
			listenErr <- fiberApp.Listen(":" + cfg.Port)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-listenErr:
			setup.Shutdown(db, logger)
			if err != nil {
				logger.Error("server failed", "error", err)
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-quit:
		}

		logger.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}

		setup.Shutdown(db, logger)
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
