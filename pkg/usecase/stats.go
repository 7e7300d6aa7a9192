package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/model/config"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// StatsUseCase aggregates one sheet for the chart panels. All
// aggregations run over the full sheet, not the filtered view.
type StatsUseCase struct {
	repo      interfaces.Repository
	dashboard *config.Dashboard
}

func NewStatsUseCase(repo interfaces.Repository, dashboard *config.Dashboard) *StatsUseCase {
	return &StatsUseCase{
		repo:      repo,
		dashboard: dashboard,
	}
}

// DivisionCounts returns the per-division row counts of the sheet,
// missing values labeled Unknown, sorted by count then label. The result
// is nil when the sheet has no division column.
func (uc *StatsUseCase) DivisionCounts(ctx context.Context, name types.SheetName) ([]model.CategoryCount, error) {
	return uc.counts(ctx, name, types.ColumnRoleDivision, func(rec *model.Record) string {
		return string(rec.Division)
	})
}

// RiskCounts returns the per-risk-level row counts of the sheet. The
// result is nil when the sheet has no risk column.
func (uc *StatsUseCase) RiskCounts(ctx context.Context, name types.SheetName) ([]model.CategoryCount, error) {
	return uc.counts(ctx, name, types.ColumnRoleRisk, func(rec *model.Record) string {
		return string(rec.Risk)
	})
}

func (uc *StatsUseCase) counts(ctx context.Context, name types.SheetName, role types.ColumnRole, key func(*model.Record) string) ([]model.CategoryCount, error) {
	sheet, err := uc.repo.Workbook().Sheet(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(ErrSheetNotFound, "sheet not found", goerr.V(SheetKey, name))
	}
	if !sheet.HasRole(role) {
		return nil, nil
	}

	records, err := uc.repo.Workbook().Records(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get records", goerr.V(SheetKey, name))
	}

	byLabel := make(map[string]int)
	for _, rec := range records {
		label := key(rec)
		if label == "" {
			label = types.UnknownLabel
		}
		byLabel[label]++
	}

	counts := make([]model.CategoryCount, 0, len(byLabel))
	for label, n := range byLabel {
		counts = append(counts, model.CategoryCount{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})

	return counts, nil
}

// CrossTab builds the hazard by control contingency table of the sheet.
// Missing cells count as Unknown, both axes sort lexicographically, and
// the hazard axis is capped at the configured limit.
func (uc *StatsUseCase) CrossTab(ctx context.Context, name types.SheetName) (*model.CrossTab, error) {
	sheet, err := uc.repo.Workbook().Sheet(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(ErrSheetNotFound, "sheet not found", goerr.V(SheetKey, name))
	}

	hazardIdx := sheet.ColumnIndex(types.ColumnRoleHazard)
	controlIdx := sheet.ColumnIndex(types.ColumnRoleControl)
	if hazardIdx < 0 || controlIdx < 0 {
		return nil, goerr.Wrap(ErrCrossTabUnavailable, "cross tabulation needs hazard and control columns",
			goerr.V(SheetKey, name))
	}

	records, err := uc.repo.Workbook().Records(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get records", goerr.V(SheetKey, name))
	}

	cells := make(map[string]map[string]int)
	colSet := make(map[string]struct{})
	for _, rec := range records {
		h := cellLabel(rec.Value(hazardIdx))
		c := cellLabel(rec.Value(controlIdx))
		if cells[h] == nil {
			cells[h] = make(map[string]int)
		}
		cells[h][c]++
		colSet[c] = struct{}{}
	}

	rows := make([]string, 0, len(cells))
	for h := range cells {
		rows = append(rows, h)
	}
	sort.Strings(rows)
	if limit := uc.dashboard.CrossTabCap; limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	cols := make([]string, 0, len(colSet))
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	counts := make([][]int, len(rows))
	for i, h := range rows {
		counts[i] = make([]int, len(cols))
		for j, c := range cols {
			counts[i][j] = cells[h][c]
		}
	}

	return &model.CrossTab{
		RowHeader: sheet.Columns[hazardIdx].Header,
		ColHeader: sheet.Columns[controlIdx].Header,
		Rows:      rows,
		Cols:      cols,
		Counts:    counts,
	}, nil
}

func cellLabel(v string) string {
	if v == "" {
		return types.UnknownLabel
	}
	return v
}
