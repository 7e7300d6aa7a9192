package interfaces

import (
	"context"
	"io"
	"time"

	"github.com/safework-lab/jhaboard/pkg/domain/model"
)

// WorkbookSource abstracts where the spreadsheet bytes come from: a
// local file or a gs:// object. The refresh worker polls ModTime to
// detect changes.
type WorkbookSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	ModTime(ctx context.Context) (time.Time, error)
	String() string
}

// WorkbookLoader parses a workbook source into the domain model
type WorkbookLoader interface {
	Load(ctx context.Context, src WorkbookSource) (*model.Workbook, error)
}
