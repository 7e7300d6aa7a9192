package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = goerr.New("not found")

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	workbook *workbookRepository
	export   *exportRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		workbook: newWorkbookRepository(),
		export:   newExportRepository(),
	}
}

func (m *Memory) Workbook() interfaces.WorkbookRepository {
	return m.workbook
}

func (m *Memory) Export() interfaces.ExportRepository {
	return m.export
}

func (m *Memory) Close() error {
	return nil
}
