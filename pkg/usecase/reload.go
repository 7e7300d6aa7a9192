package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
)

// ReloadUseCase re-reads the workbook source and swaps the served data
// wholesale. A failed load leaves the previous generation untouched.
type ReloadUseCase struct {
	repo   interfaces.Repository
	loader interfaces.WorkbookLoader
	source interfaces.WorkbookSource
}

func NewReloadUseCase(repo interfaces.Repository, loader interfaces.WorkbookLoader, source interfaces.WorkbookSource) *ReloadUseCase {
	return &ReloadUseCase{
		repo:   repo,
		loader: loader,
		source: source,
	}
}

// Configured reports whether a source is wired for reloading
func (uc *ReloadUseCase) Configured() bool {
	return uc.loader != nil && uc.source != nil
}

// Reload loads the workbook from the source and replaces the served
// generation, returning the stats of the new one.
func (uc *ReloadUseCase) Reload(ctx context.Context) (*model.WorkbookStats, error) {
	if !uc.Configured() {
		return nil, goerr.Wrap(ErrReloadNotConfigured, "no workbook source is configured")
	}

	wb, err := uc.loader.Load(ctx, uc.source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load workbook", goerr.V("source", uc.source.String()))
	}

	if err := uc.repo.Workbook().ReplaceAll(ctx, wb); err != nil {
		return nil, goerr.Wrap(err, "failed to replace workbook")
	}

	stats, err := uc.repo.Workbook().Stats(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workbook stats")
	}

	logging.From(ctx).Info("Workbook reloaded",
		"source", uc.source.String(),
		"generation", stats.Generation,
		"sheets", stats.Sheets,
		"records", stats.Records)

	return stats, nil
}
