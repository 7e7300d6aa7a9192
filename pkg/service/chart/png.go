package chart

import (
	"bytes"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// DivisionBarPNG renders the division counts as a bar chart PNG for
// embedding into the PDF report.
func DivisionBarPNG(title string, counts []model.CategoryCount, width, height int) ([]byte, error) {
	if len(counts) == 0 {
		return nil, goerr.New("no counts to render")
	}

	bars := make([]gochart.Value, len(counts))
	for i, c := range counts {
		bars[i] = gochart.Value{Label: c.Label, Value: float64(c.Count)}
	}

	graph := gochart.BarChart{
		Title:    title,
		Width:    width,
		Height:   height,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render bar chart")
	}
	return buf.Bytes(), nil
}

// RiskPiePNG renders the risk counts as a pie chart PNG for embedding
// into the PDF report.
func RiskPiePNG(title string, counts []model.CategoryCount, width, height int) ([]byte, error) {
	if len(counts) == 0 {
		return nil, goerr.New("no counts to render")
	}

	values := make([]gochart.Value, len(counts))
	for i, c := range counts {
		values[i] = gochart.Value{Label: c.Label, Value: float64(c.Count)}
	}

	graph := gochart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render pie chart")
	}
	return buf.Bytes(), nil
}
