package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/model/config"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/service/chart"
	"github.com/safework-lab/jhaboard/pkg/service/excel"
	"github.com/safework-lab/jhaboard/pkg/service/pdf"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
)

// Report chart raster size before page scaling
const (
	reportChartWidth  = 800
	reportChartHeight = 400
)

// ExportUseCase renders the filtered view into downloadable documents
// and keeps the export audit trail.
type ExportUseCase struct {
	repo      interfaces.Repository
	dashboard *config.Dashboard
	sheets    *SheetUseCase
	stats     *StatsUseCase
}

func NewExportUseCase(repo interfaces.Repository, dashboard *config.Dashboard, sheets *SheetUseCase, stats *StatsUseCase) *ExportUseCase {
	return &ExportUseCase{
		repo:      repo,
		dashboard: dashboard,
		sheets:    sheets,
		stats:     stats,
	}
}

// WriteCSV writes the filtered rows as RFC 4180 CSV and records the export
func (uc *ExportUseCase) WriteCSV(ctx context.Context, w io.Writer, name types.SheetName, q model.Query) (*model.ExportEntry, error) {
	sheet, records, err := uc.filtered(ctx, name, q)
	if err != nil {
		return nil, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(sheet.Headers()); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}
	row := make([]string, len(sheet.Columns))
	for _, rec := range records {
		for i := range sheet.Columns {
			row[i] = rec.Value(i)
		}
		if err := cw.Write(row); err != nil {
			return nil, goerr.Wrap(err, "failed to write CSV row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to flush CSV")
	}

	return uc.audit(ctx, types.ExportFormatCSV, name, q, len(records))
}

// WriteXLSX writes the filtered rows as a single-sheet workbook and
// records the export.
func (uc *ExportUseCase) WriteXLSX(ctx context.Context, w io.Writer, name types.SheetName, q model.Query) (*model.ExportEntry, error) {
	sheet, records, err := uc.filtered(ctx, name, q)
	if err != nil {
		return nil, err
	}

	if err := excel.WriteXLSX(ctx, w, sheet, records); err != nil {
		return nil, err
	}

	return uc.audit(ctx, types.ExportFormatXLSX, name, q, len(records))
}

// WritePDF writes the report document for the filtered view and records
// the export. The table section is capped at the configured row limit;
// the audit entry counts the whole filtered view.
func (uc *ExportUseCase) WritePDF(ctx context.Context, w io.Writer, name types.SheetName, q model.Query) (*model.ExportEntry, error) {
	sheet, records, err := uc.filtered(ctx, name, q)
	if err != nil {
		return nil, err
	}

	report, chartPNG := uc.buildReport(ctx, sheet, records)
	if err := pdf.Render(ctx, w, report, chartPNG); err != nil {
		return nil, err
	}

	return uc.audit(ctx, types.ExportFormatPDF, name, q, report.TotalRows)
}

// Recent returns the latest export audit entries, newest first
func (uc *ExportUseCase) Recent(ctx context.Context, limit int) ([]*model.ExportEntry, error) {
	entries, err := uc.repo.Export().Recent(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list exports")
	}

	return entries, nil
}

func (uc *ExportUseCase) filtered(ctx context.Context, name types.SheetName, q model.Query) (*model.Sheet, []*model.Record, error) {
	sheet, err := uc.repo.Workbook().Sheet(ctx, name)
	if err != nil {
		return nil, nil, goerr.Wrap(ErrSheetNotFound, "sheet not found", goerr.V(SheetKey, name))
	}

	// Exports always cover the whole filtered view
	q.Offset, q.Limit = 0, 0
	records, _, err := uc.sheets.Filter(ctx, name, q)
	if err != nil {
		return nil, nil, err
	}

	return sheet, records, nil
}

func (uc *ExportUseCase) audit(ctx context.Context, format types.ExportFormat, name types.SheetName, q model.Query, rows int) (*model.ExportEntry, error) {
	q.Offset, q.Limit = 0, 0
	entry, err := uc.repo.Export().Append(ctx, &model.ExportEntry{
		Format:   format,
		Sheet:    name,
		Query:    q,
		RowCount: rows,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record export", goerr.V(FormatKey, format))
	}

	return entry, nil
}

// buildReport assembles the PDF material: the capped row section and the
// chart aggregation. A chart render failure only drops the image.
func (uc *ExportUseCase) buildReport(ctx context.Context, sheet *model.Sheet, records []*model.Record) (*model.Report, []byte) {
	report := &model.Report{
		Title:       "JHA Report — " + sheet.Name.String(),
		Sheet:       sheet,
		GeneratedAt: time.Now().UTC(),
		Rows:        records,
		TotalRows:   len(records),
		RowCap:      uc.dashboard.PDFRowCap,
		Chart:       uc.reportChart(ctx, sheet.Name),
	}
	if report.RowCap > 0 && len(report.Rows) > report.RowCap {
		report.Rows = report.Rows[:report.RowCap]
	}

	if len(report.Chart.Counts) == 0 {
		return report, nil
	}

	png, err := renderChartPNG(report.Chart)
	if err != nil {
		logging.From(ctx).Warn("Failed to render report chart, skipping image",
			"sheet", sheet.Name, "error", err)
		return report, nil
	}

	return report, png
}

// reportChart picks the division bar when the sheet has divisions, the
// risk pie otherwise, matching the dashboard chart precedence.
func (uc *ExportUseCase) reportChart(ctx context.Context, name types.SheetName) model.ReportChart {
	if counts, err := uc.stats.DivisionCounts(ctx, name); err == nil && len(counts) > 0 {
		return model.ReportChart{Kind: model.ReportChartDivision, Title: "JHAs by Division", Counts: counts}
	}
	if counts, err := uc.stats.RiskCounts(ctx, name); err == nil && len(counts) > 0 {
		return model.ReportChart{Kind: model.ReportChartRisk, Title: "JHAs by Risk Level", Counts: counts}
	}
	return model.ReportChart{Kind: model.ReportChartNone}
}

func renderChartPNG(c model.ReportChart) ([]byte, error) {
	switch c.Kind {
	case model.ReportChartDivision:
		return chart.DivisionBarPNG(c.Title, c.Counts, reportChartWidth, reportChartHeight)
	case model.ReportChartRisk:
		return chart.RiskPiePNG(c.Title, c.Counts, reportChartWidth, reportChartHeight)
	default:
		return nil, nil
	}
}
