package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/service/excel"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	sheet := &model.Sheet{
		Name: "Safety",
		Columns: []model.Column{
			{Header: "Division", Role: types.ColumnRoleDivision},
			{Header: "Risk Level", Role: types.ColumnRoleRisk},
			{Header: "Hazard Description", Role: types.ColumnRoleHazard},
		},
	}
	records := []*model.Record{
		{ID: "r1", Sheet: "Safety", Values: []string{"Maintenance", "High", "Fall from ladder"}},
		{ID: "r2", Sheet: "Safety", Values: []string{"Operations", "Low", "Slippery floor"}},
	}

	var buf bytes.Buffer
	gt.NoError(t, excel.WriteXLSX(context.Background(), &buf, sheet, records)).Required()

	f, err := excelize.OpenReader(&buf)
	gt.NoError(t, err).Required()
	defer func() {
		gt.NoError(t, f.Close())
	}()

	gt.Array(t, f.GetSheetList()).Equal([]string{"Filtered"})

	rows, err := f.GetRows("Filtered")
	gt.NoError(t, err).Required()
	gt.Array(t, rows).Length(3).Required()
	gt.Array(t, rows[0]).Equal([]string{"Division", "Risk Level", "Hazard Description"})
	gt.Array(t, rows[1]).Equal([]string{"Maintenance", "High", "Fall from ladder"})
	gt.Array(t, rows[2]).Equal([]string{"Operations", "Low", "Slippery floor"})
}

func TestWriteXLSXEmptyResult(t *testing.T) {
	sheet := &model.Sheet{
		Name:    "Safety",
		Columns: []model.Column{{Header: "Division", Role: types.ColumnRoleDivision}},
	}

	var buf bytes.Buffer
	gt.NoError(t, excel.WriteXLSX(context.Background(), &buf, sheet, nil)).Required()

	f, err := excelize.OpenReader(&buf)
	gt.NoError(t, err).Required()
	defer func() {
		gt.NoError(t, f.Close())
	}()

	rows, err := f.GetRows("Filtered")
	gt.NoError(t, err).Required()
	gt.Array(t, rows).Length(1)
	gt.Array(t, rows[0]).Equal([]string{"Division"})
}
