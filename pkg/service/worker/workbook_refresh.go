package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
)

// WorkbookRefreshWorker polls the workbook source and reloads the
// repository when the modification time advances. A failed reload keeps
// the previous generation serving.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type WorkbookRefreshWorker struct {
	repo     interfaces.Repository
	loader   interfaces.WorkbookLoader
	source   interfaces.WorkbookSource
	interval time.Duration
	lastMod  time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWorkbookRefreshWorker creates a new worker for reloading the workbook
func NewWorkbookRefreshWorker(repo interfaces.Repository, loader interfaces.WorkbookLoader, source interfaces.WorkbookSource, interval time.Duration) *WorkbookRefreshWorker {
	return &WorkbookRefreshWorker{
		repo:     repo,
		loader:   loader,
		source:   source,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background polling loop
// - Baseline tracking and periodic polling both run in a background goroutine
// - Does not block server startup
func (w *WorkbookRefreshWorker) Start(ctx context.Context) error {
	logging.Default().Info("Workbook refresh worker starting",
		"source", w.source.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *WorkbookRefreshWorker) Stop() {
	logging.Default().Info("Workbook refresh worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Workbook refresh worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *WorkbookRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	// Baseline: the startup load already published the current file
	if err := w.refresh(ctx); err != nil {
		logging.Default().Error("Initial workbook check failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Workbook refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Workbook refresh worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Workbook refresh worker context cancelled")
			return
		}
	}
}

// refresh performs a single poll cycle and reloads when the source changed
func (w *WorkbookRefreshWorker) refresh(ctx context.Context) error {
	mod, err := w.source.ModTime(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to check workbook modification time")
	}

	if w.lastMod.IsZero() {
		w.lastMod = mod
		logging.Default().Info("Tracking workbook for changes", "mod_time", mod)
		return nil
	}

	if !mod.After(w.lastMod) {
		return nil
	}

	startTime := time.Now()
	logging.Default().Info("Workbook changed, reloading", "mod_time", mod)

	wb, err := w.loader.Load(ctx, w.source)
	if err != nil {
		// Keep serving the previous generation (graceful degradation)
		return goerr.Wrap(err, "failed to load changed workbook")
	}

	if err := w.repo.Workbook().ReplaceAll(ctx, wb); err != nil {
		return goerr.Wrap(err, "failed to replace workbook data")
	}

	w.lastMod = mod

	logging.Default().Info("Workbook reload completed",
		"sheets", len(wb.Sheets),
		"records", wb.TotalRecords(),
		"duration", time.Since(startTime).String())

	return nil
}
