package usecase

import (
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/domain/model/config"
)

type UseCases struct {
	repo      interfaces.Repository
	dashboard *config.Dashboard
	loader    interfaces.WorkbookLoader
	source    interfaces.WorkbookSource

	Sheet  *SheetUseCase
	Stats  *StatsUseCase
	Export *ExportUseCase
	Reload *ReloadUseCase
}

type Option func(*UseCases)

func WithDashboard(cfg *config.Dashboard) Option {
	return func(uc *UseCases) {
		uc.dashboard = cfg
	}
}

// WithReloader enables on-demand reloads from the given source
func WithReloader(loader interfaces.WorkbookLoader, source interfaces.WorkbookSource) Option {
	return func(uc *UseCases) {
		uc.loader = loader
		uc.source = source
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.dashboard == nil {
		uc.dashboard = config.DefaultDashboard()
	}

	uc.Sheet = NewSheetUseCase(repo, uc.dashboard)
	uc.Stats = NewStatsUseCase(repo, uc.dashboard)
	uc.Export = NewExportUseCase(repo, uc.dashboard, uc.Sheet, uc.Stats)
	uc.Reload = NewReloadUseCase(repo, uc.loader, uc.source)

	return uc
}

// Dashboard returns the active dashboard configuration
func (uc *UseCases) Dashboard() *config.Dashboard {
	return uc.dashboard
}
