package chart_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/service/chart"
)

var testCounts = []model.CategoryCount{
	{Label: "Maintenance", Count: 12},
	{Label: "Operations", Count: 7},
	{Label: "Unknown", Count: 1},
}

func TestRenderDivisionBar(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, chart.RenderDivisionBar(&buf, "JHAs by Division", testCounts)).Required()

	page := buf.String()
	gt.Bool(t, strings.Contains(page, "JHAs by Division")).True()
	gt.Bool(t, strings.Contains(page, "Maintenance")).True()
	gt.Bool(t, strings.Contains(page, "echarts")).True()
}

func TestRenderRiskPie(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, chart.RenderRiskPie(&buf, "JHAs by Risk Level", testCounts)).Required()

	page := buf.String()
	gt.Bool(t, strings.Contains(page, "JHAs by Risk Level")).True()
	gt.Bool(t, strings.Contains(page, "Operations")).True()
}

func TestDivisionBarPNG(t *testing.T) {
	png, err := chart.DivisionBarPNG("JHAs by Division", testCounts, 800, 400)
	gt.NoError(t, err).Required()

	// PNG magic bytes
	gt.Bool(t, bytes.HasPrefix(png, []byte("\x89PNG"))).True()
}

func TestRiskPiePNG(t *testing.T) {
	png, err := chart.RiskPiePNG("JHAs by Risk Level", testCounts, 800, 400)
	gt.NoError(t, err).Required()
	gt.Bool(t, bytes.HasPrefix(png, []byte("\x89PNG"))).True()
}

func TestPNGRenderersRejectEmptyCounts(t *testing.T) {
	_, err := chart.DivisionBarPNG("empty", nil, 800, 400)
	gt.Value(t, err).NotNil()

	_, err = chart.RiskPiePNG("empty", nil, 800, 400)
	gt.Value(t, err).NotNil()
}
