package interfaces

import (
	"context"

	"github.com/safework-lab/jhaboard/pkg/domain/model"
)

// ExportRepository defines the export audit trail
type ExportRepository interface {
	// Append records a performed export
	Append(ctx context.Context, entry *model.ExportEntry) (*model.ExportEntry, error)

	// Recent returns the latest entries, newest first
	Recent(ctx context.Context, limit int) ([]*model.ExportEntry, error)
}
