package interfaces

// Repository defines the interface for data access
type Repository interface {
	Workbook() WorkbookRepository
	Export() ExportRepository

	Close() error
}
