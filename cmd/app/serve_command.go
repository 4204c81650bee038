package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adcreative-analyzer/internal/scheduler"
	"adcreative-analyzer/internal/storage/filesystem"
	"adcreative-analyzer/internal/web"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve single-video analysis over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline(cmd.Context())
			if err != nil {
				return err
			}
			defer p.Close()
			cfg, logger := p.cfg, p.logger
			if addr != "" {
				cfg.Server.Addr = addr
			}

			batch, err := p.batch()
			if err != nil {
				return err
			}
			tempDir := cfg.Server.TempDir
			if tempDir == "" {
				tempDir = filepath.Join(os.TempDir(), "adcreative-uploads")
			}
			uploads, err := filesystem.NewFileSystemStorage(tempDir, logger)
			if err != nil {
				return err
			}
			if err := uploads.EnsureBase(); err != nil {
				return err
			}

			runCtx, cancelRuns := context.WithCancel(cmd.Context())
			defer cancelRuns()

			if cfg.Scheduler.Enabled {
				s, err := scheduler.NewScheduler(runCtx, batch, cfg.Scheduler.BatchCronSpec, logger)
				if err != nil {
					return err
				}
				s.Start()
				defer s.Stop()
			} else {
				logger.Info("scheduler disabled")
			}

			server := &http.Server{
				Addr: cfg.Server.Addr,
				Handler: web.SetupRouter(cfg, web.Dependencies{
					Analyzer: p.extract,
					Stager:   uploads,
					Batch:    batch,
					Metrics:  p.metrics,
					Logger:   logger,
					BaseCtx:  runCtx,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("http server listening", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-serveErr:
				return fmt.Errorf("http server: %w", err)
			case sig := <-quit:
				logger.Info("shutdown signal received", zap.String("signal", sig.String()))
			case <-cmd.Context().Done():
			}

			cancelRuns()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			logger.Info("http server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
