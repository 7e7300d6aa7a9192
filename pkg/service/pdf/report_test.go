package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

func testReport(rows int) *model.Report {
	sheet := &model.Sheet{
		Name: "Safety",
		Columns: []model.Column{
			{Header: "Division", Role: types.ColumnRoleDivision},
			{Header: "Hazard Description", Role: types.ColumnRoleHazard},
		},
	}

	records := make([]*model.Record, rows)
	for i := range records {
		records[i] = &model.Record{
			ID:     model.NewRecordID(),
			Sheet:  "Safety",
			Values: []string{"Maintenance", "Fall from ladder"},
		}
	}

	return &model.Report{
		Title:       "JHA Report — Safety",
		Sheet:       sheet,
		GeneratedAt: time.Now().UTC(),
		Rows:        records,
		TotalRows:   rows,
		RowCap:      50,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, Render(context.Background(), &buf, testReport(3), nil)).Required()
	gt.Bool(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-"))).True()
}

func TestRenderWithChartImage(t *testing.T) {
	// minimal 1x1 PNG
	png := []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
		0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
		0xde, 0x00, 0x00, 0x00, 0x0c, 0x49, 0x44, 0x41,
		0x54, 0x08, 0xd7, 0x63, 0xf8, 0xcf, 0xc0, 0x00,
		0x00, 0x00, 0x03, 0x00, 0x01, 0x9a, 0x61, 0x2c,
		0x4a, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e,
		0x44, 0xae, 0x42, 0x60, 0x82,
	}

	var buf bytes.Buffer
	gt.NoError(t, Render(context.Background(), &buf, testReport(2), png)).Required()
	gt.Bool(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-"))).True()
}

func TestRenderManyRowsPaginates(t *testing.T) {
	report := testReport(50)
	for _, rec := range report.Rows {
		rec.Values = []string{strings.Repeat("maintenance ", 6), strings.Repeat("ladder fall ", 6)}
	}

	var buf bytes.Buffer
	gt.NoError(t, Render(context.Background(), &buf, report, nil)).Required()

	// 50 wrapped rows cannot fit on one letter page
	pages := strings.Count(buf.String(), "/Type /Page")
	gt.Bool(t, pages >= 3).True()
}

func TestRowLineTruncatesValues(t *testing.T) {
	rec := &model.Record{
		Values: []string{strings.Repeat("a", 120), "short"},
	}
	columns := []model.Column{
		{Header: "Hazard"},
		{Header: "Control"},
	}

	line := rowLine(rec, columns)
	gt.Bool(t, strings.Contains(line, "Hazard: "+strings.Repeat("a", 80)+" | ")).True()
	gt.Bool(t, strings.Contains(line, strings.Repeat("a", 81))).False()
	gt.Bool(t, strings.Contains(line, "Control: short")).True()
}

func TestChunkRunes(t *testing.T) {
	chunks := chunkRunes(strings.Repeat("x", 450), 200)
	gt.Array(t, chunks).Length(3).Required()
	gt.Number(t, len(chunks[0])).Equal(200)
	gt.Number(t, len(chunks[2])).Equal(50)

	gt.Array(t, chunkRunes("", 200)).Equal([]string{""})
}
