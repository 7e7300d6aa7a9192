package excel

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/utils/safe"
	"github.com/xuri/excelize/v2"
)

// exportSheetName is the single sheet of exported workbooks
const exportSheetName = "Filtered"

// WriteXLSX writes the header and the given rows as a single-sheet
// workbook. Rows shorter than the header leave trailing cells blank.
func WriteXLSX(ctx context.Context, w io.Writer, sheet *model.Sheet, records []*model.Record) error {
	f := excelize.NewFile()
	defer safe.Close(ctx, f)

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return goerr.Wrap(err, "failed to name export sheet")
	}

	headers := sheet.Headers()
	if err := f.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		return goerr.Wrap(err, "failed to write header row")
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return goerr.Wrap(err, "failed to compute cell name", goerr.V("row", i))
		}
		if err := f.SetSheetRow(exportSheetName, cell, &rec.Values); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("row", i))
		}
	}

	if err := f.Write(w); err != nil {
		return goerr.Wrap(err, "failed to write workbook")
	}
	return nil
}
