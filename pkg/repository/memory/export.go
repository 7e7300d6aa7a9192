package memory

import (
	"context"
	"sync"
	"time"

	"github.com/safework-lab/jhaboard/pkg/domain/model"
)

type exportRepository struct {
	mu      sync.RWMutex
	entries []*model.ExportEntry
}

func newExportRepository() *exportRepository {
	return &exportRepository{}
}

func copyEntry(entry *model.ExportEntry) *model.ExportEntry {
	copied := *entry
	return &copied
}

func (r *exportRepository) Append(ctx context.Context, entry *model.ExportEntry) (*model.ExportEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyEntry(entry)
	if created.ID == "" {
		created.ID = model.NewExportID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.entries = append(r.entries, created)
	return copyEntry(created), nil
}

func (r *exportRepository) Recent(ctx context.Context, limit int) ([]*model.ExportEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.entries)
	if limit <= 0 || limit > n {
		limit = n
	}

	recent := make([]*model.ExportEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		recent = append(recent, copyEntry(r.entries[i]))
	}
	return recent, nil
}
