package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
)

// Layout constants of the report renderer.
const (
	pageMargin   = 40.0
	bottomMargin = 60.0
	titleSize    = 16.0
	bodySize     = 10.0
	lineHeight   = 12.0
	valueRuneCap = 80
	lineRuneCap  = 200
)

// Render writes the report as a letter-size PDF: the title, the chart
// image scaled to the page width when one is given, then the capped
// rows as one "Header: value | ..." line each.
func Render(ctx context.Context, w io.Writer, report *model.Report, chartPNG []byte) error {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetTitle(report.Title, true)
	doc.SetCreationDate(report.GeneratedAt)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, bottomMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, titleSize+6, tr(report.Title), "", 1, "L", false, 0, "")
	doc.Ln(8)

	if len(chartPNG) > 0 {
		if err := embedChart(doc, chartPNG); err != nil {
			return err
		}
	}

	doc.SetFont("Helvetica", "", bodySize)
	for _, rec := range report.Rows {
		line := rowLine(rec, report.Sheet.Columns)
		for _, chunk := range chunkRunes(line, lineRuneCap) {
			doc.MultiCell(0, lineHeight, tr(chunk), "", "L", false)
		}
	}

	if doc.Err() {
		return goerr.Wrap(doc.Error(), "failed to build pdf")
	}
	if err := doc.Output(w); err != nil {
		return goerr.Wrap(err, "failed to write pdf")
	}
	return nil
}

func embedChart(doc *fpdf.Fpdf, png []byte) error {
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	info := doc.RegisterImageOptionsReader("report-chart", opt, bytes.NewReader(png))
	if doc.Err() {
		return goerr.Wrap(doc.Error(), "failed to register chart image")
	}

	pageW, _ := doc.GetPageSize()
	maxW := pageW - 2*pageMargin
	imgW := info.Width()
	if imgW > maxW {
		imgW = maxW
	}

	doc.ImageOptions("report-chart", pageMargin, 0, imgW, 0, true, opt, 0, "")
	doc.Ln(20)
	return nil
}

// rowLine joins the row's fields as "Header: value" pairs, each value
// truncated to 80 chars.
func rowLine(rec *model.Record, columns []model.Column) string {
	fields := rec.Fields(columns)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + ": " + truncateRunes(f.Value, valueRuneCap)
	}
	return strings.Join(parts, " | ")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func chunkRunes(s string, n int) []string {
	r := []rune(s)
	if len(r) == 0 {
		return []string{""}
	}
	chunks := make([]string, 0, (len(r)+n-1)/n)
	for start := 0; start < len(r); start += n {
		end := start + n
		if end > len(r) {
			end = len(r)
		}
		chunks = append(chunks, string(r[start:end]))
	}
	return chunks
}
