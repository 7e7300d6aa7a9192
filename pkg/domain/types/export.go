package types

import "github.com/m-mizutani/goerr/v2"

// ExportFormat identifies a download format for the filtered view
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

// AllExportFormats returns all valid export formats
func AllExportFormats() []ExportFormat {
	return []ExportFormat{
		ExportFormatCSV,
		ExportFormatXLSX,
		ExportFormatPDF,
	}
}

// IsValid checks if the export format is valid
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatCSV, ExportFormatXLSX, ExportFormatPDF:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export format
func (f ExportFormat) String() string {
	return string(f)
}

// ContentType returns the MIME type served for the format
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv"
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ExportFormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Filename returns the default download filename for the format
func (f ExportFormat) Filename() string {
	switch f {
	case ExportFormatPDF:
		return "jha_report.pdf"
	default:
		return "jha_filtered." + string(f)
	}
}

// ParseExportFormat parses a string into an ExportFormat
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(s)
	if !f.IsValid() {
		return "", goerr.New("invalid export format", goerr.V("format", s))
	}
	return f, nil
}
