package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// ExportID is a ULID-based identifier for an export audit entry.
// ULIDs sort by creation time, which keeps the audit naturally ordered.
type ExportID string

// NewExportID generates a new ExportID
func NewExportID() ExportID {
	return ExportID(ulid.Make().String())
}

// String returns the string representation of ExportID
func (e ExportID) String() string {
	return string(e)
}

// ExportEntry records one performed export of the filtered view.
type ExportEntry struct {
	ID        ExportID           `json:"id"`
	Format    types.ExportFormat `json:"format"`
	Sheet     types.SheetName    `json:"sheet"`
	Query     Query              `json:"query"`
	RowCount  int                `json:"row_count"`
	CreatedAt time.Time          `json:"created_at"`
}

// Report is the material of a PDF report: the filtered rows (capped),
// the chart aggregation, and presentation metadata.
type Report struct {
	Title       string
	Sheet       *Sheet
	GeneratedAt time.Time
	Rows        []*Record // capped at RowCap
	TotalRows   int       // filtered count before the cap
	RowCap      int
	Chart       ReportChart
}

// ReportChartKind selects which aggregation the report chart shows
type ReportChartKind string

const (
	ReportChartDivision ReportChartKind = "division" // horizontal bar, preferred
	ReportChartRisk     ReportChartKind = "risk"     // pie, fallback
	ReportChartNone     ReportChartKind = "none"
)

// ReportChart is the aggregation embedded into the PDF as an image.
type ReportChart struct {
	Kind   ReportChartKind
	Title  string
	Counts []CategoryCount
}
