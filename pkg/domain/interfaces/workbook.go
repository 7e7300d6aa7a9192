package interfaces

import (
	"context"

	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// WorkbookRepository defines access to the loaded spreadsheet data.
// Rows are immutable; a reload replaces the whole workbook at once.
type WorkbookRepository interface {
	// ReplaceAll atomically swaps in a new workbook generation
	ReplaceAll(ctx context.Context, wb *model.Workbook) error

	// Sheets returns all sheets in workbook order
	Sheets(ctx context.Context) ([]*model.Sheet, error)

	// Sheet returns one sheet by name
	Sheet(ctx context.Context, name types.SheetName) (*model.Sheet, error)

	// Records returns the rows of one sheet in file order
	Records(ctx context.Context, name types.SheetName) ([]*model.Record, error)

	// Record returns one row by ID
	Record(ctx context.Context, name types.SheetName, id model.RecordID) (*model.Record, error)

	// Stats describes the currently served generation
	Stats(ctx context.Context) (*model.WorkbookStats, error)
}
