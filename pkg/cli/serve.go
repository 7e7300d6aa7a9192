package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/safework-lab/jhaboard/pkg/cli/config"
	httpctrl "github.com/safework-lab/jhaboard/pkg/controller/http"
	"github.com/safework-lab/jhaboard/pkg/repository/memory"
	"github.com/safework-lab/jhaboard/pkg/service/excel"
	"github.com/safework-lab/jhaboard/pkg/service/worker"
	"github.com/safework-lab/jhaboard/pkg/usecase"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.AppConfig
	var workbookCfg config.Workbook

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("JHABOARD_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, workbookCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			dashboard, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			source, err := workbookCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to resolve workbook source")
			}

			repo := memory.New()
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// The first load must succeed. Serving an empty dashboard
			// would hide a broken workbook path until someone notices.
			loader := excel.NewLoader(dashboard)
			uc := usecase.New(repo,
				usecase.WithDashboard(dashboard),
				usecase.WithReloader(loader, source),
			)
			stats, err := uc.Reload.Reload(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load workbook")
			}
			logging.Default().Info("Workbook loaded",
				"source", source.String(),
				"sheets", stats.Sheets,
				"records", stats.Records,
			)

			// Start workbook refresh worker unless polling is disabled
			var refreshWorker *worker.WorkbookRefreshWorker
			if interval := workbookCfg.RefreshInterval(); interval > 0 {
				refreshWorker = worker.NewWorkbookRefreshWorker(repo, loader, source, interval)
				if err := refreshWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start workbook refresh worker")
				}
			}

			httpHandler, err := httpctrl.New(uc, httpctrl.WithVersion(c.Root().Version))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop workbook refresh worker first
				if refreshWorker != nil {
					refreshWorker.Stop()
				}

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
