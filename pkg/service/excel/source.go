package excel

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
)

// FileSource reads the workbook from a local file
type FileSource struct {
	path string
}

var _ interfaces.WorkbookSource = &FileSource{}

// NewFileSource creates a workbook source for a local file path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens the workbook file
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	// #nosec G304 - path comes from CLI configuration
	f, err := os.Open(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook", goerr.V("path", s.path))
	}
	return f, nil
}

// ModTime returns the file modification time
func (s *FileSource) ModTime(ctx context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to stat workbook", goerr.V("path", s.path))
	}
	return info.ModTime(), nil
}

// String returns the file path
func (s *FileSource) String() string {
	return s.path
}
