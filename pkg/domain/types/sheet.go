package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// SheetName identifies a workbook sheet (a dashboard tab)
type SheetName string

// Validate checks if the SheetName is valid
func (s SheetName) Validate() error {
	if s == "" {
		return goerr.New("sheet name cannot be empty")
	}
	return nil
}

// String returns the string representation of SheetName
func (s SheetName) String() string {
	return string(s)
}

// Division is a categorical grouping value used as a filter key
type Division string

// String returns the string representation of Division
func (d Division) String() string {
	return string(d)
}

// RiskLevel is a categorical severity value used as a filter key
type RiskLevel string

// String returns the string representation of RiskLevel
func (r RiskLevel) String() string {
	return string(r)
}

// UnknownLabel is the display label for missing categorical values in
// chart aggregations.
const UnknownLabel = "Unknown"
