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

// SheetUseCase serves the tabular side of the dashboard: sheet listing,
// filter metadata, row filtering and row details.
type SheetUseCase struct {
	repo      interfaces.Repository
	dashboard *config.Dashboard
}

func NewSheetUseCase(repo interfaces.Repository, dashboard *config.Dashboard) *SheetUseCase {
	return &SheetUseCase{
		repo:      repo,
		dashboard: dashboard,
	}
}

// SheetMeta describes one sheet for the dashboard controls. Division and
// Risk hold the distinct dropdown values; the UI prepends "All".
type SheetMeta struct {
	Sheet     *model.Sheet `json:"sheet"`
	Divisions []string     `json:"divisions"`
	Risks     []string     `json:"risks"`
}

// Sheets returns all sheets in workbook order
func (uc *SheetUseCase) Sheets(ctx context.Context) ([]*model.Sheet, error) {
	sheets, err := uc.repo.Workbook().Sheets(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sheets")
	}

	return sheets, nil
}

// Stats describes the currently served workbook generation
func (uc *SheetUseCase) Stats(ctx context.Context) (*model.WorkbookStats, error) {
	stats, err := uc.repo.Workbook().Stats(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workbook stats")
	}

	return stats, nil
}

// Meta returns the filter metadata of one sheet. Dropdown values are the
// distinct non-empty cell values; divisions sort lexicographically and
// risks follow the configured order, then lexicographically.
func (uc *SheetUseCase) Meta(ctx context.Context, name types.SheetName) (*SheetMeta, error) {
	sheet, err := uc.repo.Workbook().Sheet(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(ErrSheetNotFound, "sheet not found", goerr.V(SheetKey, name))
	}

	records, err := uc.repo.Workbook().Records(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get records", goerr.V(SheetKey, name))
	}

	divisions := distinctValues(records, func(rec *model.Record) string { return string(rec.Division) })
	sort.Strings(divisions)

	risks := distinctValues(records, func(rec *model.Record) string { return string(rec.Risk) })
	sort.SliceStable(risks, func(i, j int) bool {
		ri, rj := uc.dashboard.RiskRank(risks[i]), uc.dashboard.RiskRank(risks[j])
		if ri != rj {
			return ri < rj
		}
		return risks[i] < risks[j]
	})

	return &SheetMeta{
		Sheet:     sheet,
		Divisions: divisions,
		Risks:     risks,
	}, nil
}

// Filter returns the rows of the sheet matching the query, in file order,
// plus the total match count before pagination.
func (uc *SheetUseCase) Filter(ctx context.Context, name types.SheetName, q model.Query) ([]*model.Record, int, error) {
	records, err := uc.repo.Workbook().Records(ctx, name)
	if err != nil {
		return nil, 0, goerr.Wrap(ErrSheetNotFound, "sheet not found", goerr.V(SheetKey, name))
	}

	matched := make([]*model.Record, 0, len(records))
	for _, rec := range records {
		if q.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			matched = matched[:0]
		} else {
			matched = matched[q.Offset:]
		}
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	return matched, total, nil
}

// RowDetail is the expanded view of one row: its cells zipped with the
// sheet headers in column order.
type RowDetail struct {
	ID     model.RecordID  `json:"id"`
	Sheet  types.SheetName `json:"sheet"`
	Fields []model.Field   `json:"fields"`
}

// RowDetail returns one row by ID with its header/value pairs
func (uc *SheetUseCase) RowDetail(ctx context.Context, name types.SheetName, id model.RecordID) (*RowDetail, error) {
	sheet, err := uc.repo.Workbook().Sheet(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(ErrSheetNotFound, "sheet not found", goerr.V(SheetKey, name))
	}

	rec, err := uc.repo.Workbook().Record(ctx, name, id)
	if err != nil {
		return nil, goerr.Wrap(ErrRecordNotFound, "record not found",
			goerr.V(SheetKey, name), goerr.V(RecordKey, id))
	}

	return &RowDetail{
		ID:     rec.ID,
		Sheet:  rec.Sheet,
		Fields: rec.Fields(sheet.Columns),
	}, nil
}

func distinctValues(records []*model.Record, key func(*model.Record) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, rec := range records {
		v := key(rec)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
