package model

import (
	"github.com/google/uuid"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// RecordID is a UUID-based identifier for a loaded row. IDs are assigned
// at load time and stay stable until the workbook is reloaded.
type RecordID string

// NewRecordID generates a new UUID v4 RecordID
func NewRecordID() RecordID {
	return RecordID(uuid.New().String())
}

// String returns the string representation of RecordID
func (r RecordID) String() string {
	return string(r)
}

// Record is one JHA row. Records are immutable once loaded; a reload
// replaces them wholesale.
type Record struct {
	ID       RecordID
	Sheet    types.SheetName
	Division types.Division  // empty when the sheet has no division column
	Risk     types.RiskLevel // empty when the sheet has no risk column
	Values   []string        // cell values aligned to the sheet's columns
}

// Field is a header/value pair of a record, used for the row detail view
// and the PDF table section.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fields zips the record values with the sheet columns in column order.
// Missing trailing cells yield empty values.
func (r *Record) Fields(columns []Column) []Field {
	fields := make([]Field, len(columns))
	for i, col := range columns {
		var v string
		if i < len(r.Values) {
			v = r.Values[i]
		}
		fields[i] = Field{Name: col.Header, Value: v}
	}
	return fields
}

// Value returns the cell at the given column index, or empty when the
// row is shorter than the header.
func (r *Record) Value(idx int) string {
	if idx < 0 || idx >= len(r.Values) {
		return ""
	}
	return r.Values[idx]
}
