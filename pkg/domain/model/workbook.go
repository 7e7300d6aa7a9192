package model

import (
	"time"

	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// Workbook is one parsed spreadsheet: the ordered sheets plus their
// rows. A workbook is built by the loader and swapped into the
// repository as a whole.
type Workbook struct {
	Source  string // path or URL the workbook was loaded from
	Sheets  []*Sheet
	Records map[types.SheetName][]*Record
}

// TotalRecords sums the row counts of all sheets
func (w *Workbook) TotalRecords() int {
	total := 0
	for _, records := range w.Records {
		total += len(records)
	}
	return total
}

// WorkbookStats describes the currently served workbook generation.
type WorkbookStats struct {
	Generation int64     `json:"generation"`
	LoadedAt   time.Time `json:"loaded_at"`
	Source     string    `json:"source"`
	Sheets     int       `json:"sheets"`
	Records    int       `json:"records"`
}
