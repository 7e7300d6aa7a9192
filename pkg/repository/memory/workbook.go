package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

type workbookRepository struct {
	mu         sync.RWMutex
	source     string
	sheets     []*model.Sheet
	records    map[types.SheetName][]*model.Record
	byID       map[types.SheetName]map[model.RecordID]*model.Record
	generation int64
	loadedAt   time.Time
}

func newWorkbookRepository() *workbookRepository {
	return &workbookRepository{
		records: make(map[types.SheetName][]*model.Record),
		byID:    make(map[types.SheetName]map[model.RecordID]*model.Record),
	}
}

// copyRecord creates a deep copy of a record
func copyRecord(rec *model.Record) *model.Record {
	copied := &model.Record{
		ID:       rec.ID,
		Sheet:    rec.Sheet,
		Division: rec.Division,
		Risk:     rec.Risk,
	}
	if rec.Values != nil {
		copied.Values = make([]string, len(rec.Values))
		copy(copied.Values, rec.Values)
	}
	return copied
}

// copySheet creates a deep copy of a sheet
func copySheet(sheet *model.Sheet) *model.Sheet {
	copied := &model.Sheet{
		Name: sheet.Name,
		Rows: sheet.Rows,
	}
	if sheet.Columns != nil {
		copied.Columns = make([]model.Column, len(sheet.Columns))
		copy(copied.Columns, sheet.Columns)
	}
	return copied
}

func (r *workbookRepository) ReplaceAll(ctx context.Context, wb *model.Workbook) error {
	if wb == nil {
		return goerr.New("workbook is nil")
	}

	sheets := make([]*model.Sheet, len(wb.Sheets))
	records := make(map[types.SheetName][]*model.Record, len(wb.Records))
	byID := make(map[types.SheetName]map[model.RecordID]*model.Record, len(wb.Records))

	for i, sheet := range wb.Sheets {
		sheets[i] = copySheet(sheet)
	}
	for name, recs := range wb.Records {
		bucket := make([]*model.Record, len(recs))
		index := make(map[model.RecordID]*model.Record, len(recs))
		for i, rec := range recs {
			copied := copyRecord(rec)
			bucket[i] = copied
			index[copied.ID] = copied
		}
		records[name] = bucket
		byID[name] = index
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.source = wb.Source
	r.sheets = sheets
	r.records = records
	r.byID = byID
	r.generation++
	r.loadedAt = time.Now().UTC()

	return nil
}

func (r *workbookRepository) Sheets(ctx context.Context) ([]*model.Sheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sheets := make([]*model.Sheet, len(r.sheets))
	for i, sheet := range r.sheets {
		sheets[i] = copySheet(sheet)
	}
	return sheets, nil
}

func (r *workbookRepository) Sheet(ctx context.Context, name types.SheetName) (*model.Sheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sheet := range r.sheets {
		if sheet.Name == name {
			return copySheet(sheet), nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "sheet not found", goerr.V("sheet", name))
}

func (r *workbookRepository) Records(ctx context.Context, name types.SheetName) ([]*model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket, exists := r.records[name]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "sheet not found", goerr.V("sheet", name))
	}

	records := make([]*model.Record, len(bucket))
	for i, rec := range bucket {
		records[i] = copyRecord(rec)
	}
	return records, nil
}

func (r *workbookRepository) Record(ctx context.Context, name types.SheetName, id model.RecordID) (*model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.byID[name]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "sheet not found", goerr.V("sheet", name))
	}

	rec, exists := index[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "record not found",
			goerr.V("sheet", name), goerr.V("id", id))
	}
	return copyRecord(rec), nil
}

func (r *workbookRepository) Stats(ctx context.Context) (*model.WorkbookStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, bucket := range r.records {
		total += len(bucket)
	}

	return &model.WorkbookStats{
		Generation: r.generation,
		LoadedAt:   r.loadedAt,
		Source:     r.source,
		Sheets:     len(r.sheets),
		Records:    total,
	}, nil
}
