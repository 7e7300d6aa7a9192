package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrRecordNotFound = errors.New("record not found")

	// Availability errors
	ErrCrossTabUnavailable = errors.New("sheet has no hazard and control columns")
	ErrReloadNotConfigured = errors.New("reload is not configured")
)

// Context keys for error values
const (
	SheetKey  = "sheet"
	RecordKey = "record_id"
	FormatKey = "format"
)
