package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/model/config"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
	"github.com/safework-lab/jhaboard/pkg/utils/safe"
	"github.com/xuri/excelize/v2"
)

// Loader parses spreadsheet bytes into the domain workbook model
type Loader struct {
	dashboard *config.Dashboard
}

// NewLoader creates a workbook loader with the given dashboard config
func NewLoader(dashboard *config.Dashboard) *Loader {
	return &Loader{dashboard: dashboard}
}

// Load reads and parses the workbook from the source. Every sheet with
// a header row becomes a dashboard tab; the first row is the header,
// blank division cells inherit the nearest value above, and rows with
// no values at all are dropped.
func (l *Loader) Load(ctx context.Context, src interfaces.WorkbookSource) (*model.Workbook, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer safe.Close(ctx, rc)

	f, err := excelize.OpenReader(rc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse workbook", goerr.V("source", src.String()))
	}
	defer safe.Close(ctx, f)

	wb := &model.Workbook{
		Source:  src.String(),
		Records: make(map[types.SheetName][]*model.Record),
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read sheet", goerr.V("sheet", name))
		}
		if len(rows) == 0 {
			logging.From(ctx).Warn("Skipping sheet without header row", "sheet", name)
			continue
		}

		sheetName := types.SheetName(name)
		columns := buildColumns(rows[0], l.dashboard.Columns)
		records := buildRecords(sheetName, columns, rows[1:])

		wb.Sheets = append(wb.Sheets, &model.Sheet{
			Name:    sheetName,
			Columns: columns,
			Rows:    len(records),
		})
		wb.Records[sheetName] = records
	}

	if len(wb.Sheets) == 0 {
		return nil, goerr.New("workbook has no usable sheets", goerr.V("source", src.String()))
	}

	return wb, nil
}

// buildColumns strips header cells and detects their roles. Blank
// headers get a positional name.
func buildColumns(header []string, matchers config.ColumnMatchers) []model.Column {
	columns := make([]model.Column, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		columns[i] = model.Column{Header: h, Role: matchers.Role(h)}
	}
	return columns
}

func buildRecords(sheet types.SheetName, columns []model.Column, rows [][]string) []*model.Record {
	divIdx, riskIdx := -1, -1
	for i, col := range columns {
		switch col.Role {
		case types.ColumnRoleDivision:
			if divIdx < 0 {
				divIdx = i
			}
		case types.ColumnRoleRisk:
			if riskIdx < 0 {
				riskIdx = i
			}
		}
	}

	var records []*model.Record
	var lastDivision string

	for _, row := range rows {
		values := make([]string, len(columns))
		empty := true
		for i := range columns {
			if i < len(row) {
				values[i] = strings.TrimSpace(row[i])
			}
			if values[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}

		rec := &model.Record{
			ID:     model.NewRecordID(),
			Sheet:  sheet,
			Values: values,
		}

		if divIdx >= 0 {
			if values[divIdx] == "" {
				values[divIdx] = lastDivision
			} else {
				lastDivision = values[divIdx]
			}
			rec.Division = types.Division(values[divIdx])
		}
		if riskIdx >= 0 {
			rec.Risk = types.RiskLevel(values[riskIdx])
		}

		records = append(records, rec)
	}

	return records
}
