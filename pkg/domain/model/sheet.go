package model

import (
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// Column is a sheet column: the stripped header text and the role
// detected from it.
type Column struct {
	Header string           `json:"header"`
	Role   types.ColumnRole `json:"role"`
}

// Sheet describes one workbook sheet (a dashboard tab).
type Sheet struct {
	Name    types.SheetName `json:"name"`
	Columns []Column        `json:"columns"`
	Rows    int             `json:"rows"`
}

// ColumnIndex returns the index of the first column with the given role,
// or -1 when the sheet has none.
func (s *Sheet) ColumnIndex(role types.ColumnRole) int {
	for i, col := range s.Columns {
		if col.Role == role {
			return i
		}
	}
	return -1
}

// HasRole reports whether any column carries the given role
func (s *Sheet) HasRole(role types.ColumnRole) bool {
	return s.ColumnIndex(role) >= 0
}

// Headers returns the column headers in sheet order
func (s *Sheet) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
	}
	return headers
}
