package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
)

// RenderDivisionBar writes a standalone horizontal bar chart page. The
// dashboard embeds it in an iframe.
func RenderDivisionBar(w io.Writer, title string, counts []model.CategoryCount) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "420px",
		}),
	)

	labels := make([]string, len(counts))
	items := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		items[i] = opts.BarData{Value: c.Count}
	}

	bar.SetXAxis(labels).AddSeries("JHAs", items)
	bar.XYReversal()

	if err := bar.Render(w); err != nil {
		return goerr.Wrap(err, "failed to render division bar chart")
	}
	return nil
}

// RenderRiskPie writes a standalone pie chart page
func RenderRiskPie(w io.Writer, title string, counts []model.CategoryCount) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "420px",
		}),
	)

	items := make([]opts.PieData, len(counts))
	for i, c := range counts {
		items[i] = opts.PieData{Name: c.Label, Value: c.Count}
	}

	pie.AddSeries("JHAs", items)

	if err := pie.Render(w); err != nil {
		return goerr.Wrap(err, "failed to render risk pie chart")
	}
	return nil
}
