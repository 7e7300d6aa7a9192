package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/repository/memory"
)

func testWorkbook() *model.Workbook {
	safety := &model.Sheet{
		Name: "Safety",
		Columns: []model.Column{
			{Header: "Division", Role: types.ColumnRoleDivision},
			{Header: "Risk Level", Role: types.ColumnRoleRisk},
			{Header: "Hazard Description", Role: types.ColumnRoleHazard},
		},
		Rows: 2,
	}
	training := &model.Sheet{
		Name: "Training",
		Columns: []model.Column{
			{Header: "Topic", Role: types.ColumnRoleOther},
		},
		Rows: 1,
	}

	return &model.Workbook{
		Source: "testdata/jha.xlsx",
		Sheets: []*model.Sheet{safety, training},
		Records: map[types.SheetName][]*model.Record{
			"Safety": {
				{
					ID:       model.NewRecordID(),
					Sheet:    "Safety",
					Division: "Maintenance",
					Risk:     "High",
					Values:   []string{"Maintenance", "High", "Fall from ladder"},
				},
				{
					ID:       model.NewRecordID(),
					Sheet:    "Safety",
					Division: "Operations",
					Risk:     "Low",
					Values:   []string{"Operations", "Low", "Slippery floor"},
				},
			},
			"Training": {
				{
					ID:     model.NewRecordID(),
					Sheet:  "Training",
					Values: []string{"Lockout tagout"},
				},
			},
		},
	}
}

func runWorkbookRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("ReplaceAll publishes a new generation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		before, err := repo.Workbook().Stats(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, before.Generation).Equal(0)
		gt.Number(t, before.Records).Equal(0)

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		after, err := repo.Workbook().Stats(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, after.Generation).Equal(1)
		gt.Value(t, after.Source).Equal("testdata/jha.xlsx")
		gt.Number(t, after.Sheets).Equal(2)
		gt.Number(t, after.Records).Equal(3)
		gt.Bool(t, after.LoadedAt.IsZero()).False()
		gt.Bool(t, time.Since(after.LoadedAt) <= 3*time.Second).True()
	})

	t.Run("ReplaceAll rejects nil workbook", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Workbook().ReplaceAll(ctx, nil)
		gt.Value(t, err).NotNil()
	})

	t.Run("Sheets preserves workbook order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		sheets, err := repo.Workbook().Sheets(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, sheets).Length(2)
		gt.Value(t, sheets[0].Name).Equal(types.SheetName("Safety"))
		gt.Value(t, sheets[1].Name).Equal(types.SheetName("Training"))
		gt.Number(t, sheets[0].Rows).Equal(2)
	})

	t.Run("Sheet returns one sheet by name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		sheet, err := repo.Workbook().Sheet(ctx, "Safety")
		gt.NoError(t, err).Required()
		gt.Value(t, sheet.Name).Equal(types.SheetName("Safety"))
		gt.Array(t, sheet.Columns).Length(3)
		gt.Value(t, sheet.Columns[0].Role).Equal(types.ColumnRoleDivision)
		gt.Value(t, sheet.Columns[1].Role).Equal(types.ColumnRoleRisk)
	})

	t.Run("Sheet returns error for unknown name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		_, err := repo.Workbook().Sheet(ctx, "Nonexistent")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("Records returns rows in file order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		records, err := repo.Workbook().Records(ctx, "Safety")
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)
		gt.Value(t, records[0].Division).Equal(types.Division("Maintenance"))
		gt.Value(t, records[1].Division).Equal(types.Division("Operations"))
	})

	t.Run("Records returns error for unknown sheet", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		_, err := repo.Workbook().Records(ctx, "Nonexistent")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("Record retrieves one row by ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		wb := testWorkbook()
		want := wb.Records["Safety"][1]
		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, wb)).Required()

		got, err := repo.Workbook().Record(ctx, "Safety", want.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(want.ID)
		gt.Value(t, got.Risk).Equal(types.RiskLevel("Low"))
		gt.Array(t, got.Values).Length(3)
	})

	t.Run("Record returns error for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		_, err := repo.Workbook().Record(ctx, "Safety", "no-such-id")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("returned data is isolated from caller mutation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		wb := testWorkbook()
		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, wb)).Required()

		// mutate the caller's workbook after the swap
		wb.Sheets[0].Name = "Tampered"
		wb.Records["Safety"][0].Values[0] = "Tampered"

		sheets, err := repo.Workbook().Sheets(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, sheets[0].Name).Equal(types.SheetName("Safety"))

		records, err := repo.Workbook().Records(ctx, "Safety")
		gt.NoError(t, err).Required()
		gt.Value(t, records[0].Values[0]).Equal("Maintenance")

		// mutate a read result
		records[0].Values[0] = "Tampered again"
		again, err := repo.Workbook().Records(ctx, "Safety")
		gt.NoError(t, err).Required()
		gt.Value(t, again[0].Values[0]).Equal("Maintenance")
	})

	t.Run("second ReplaceAll swaps the whole workbook", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, testWorkbook())).Required()

		next := &model.Workbook{
			Source: "testdata/jha_v2.xlsx",
			Sheets: []*model.Sheet{
				{
					Name:    "Incidents",
					Columns: []model.Column{{Header: "Summary", Role: types.ColumnRoleOther}},
					Rows:    1,
				},
			},
			Records: map[types.SheetName][]*model.Record{
				"Incidents": {
					{ID: model.NewRecordID(), Sheet: "Incidents", Values: []string{"Near miss"}},
				},
			},
		}
		gt.NoError(t, repo.Workbook().ReplaceAll(ctx, next)).Required()

		stats, err := repo.Workbook().Stats(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, stats.Generation).Equal(2)
		gt.Value(t, stats.Source).Equal("testdata/jha_v2.xlsx")
		gt.Number(t, stats.Sheets).Equal(1)
		gt.Number(t, stats.Records).Equal(1)

		_, err = repo.Workbook().Sheet(ctx, "Safety")
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})
}

func TestMemoryWorkbookRepository(t *testing.T) {
	runWorkbookRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}
