package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/service/chart"
	"github.com/safework-lab/jhaboard/pkg/utils/errutil"
)

// divisionChartHandler serves the standalone division bar chart page.
// The aggregation covers the full sheet, not the filtered view.
func (s *Server) divisionChartHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := sheetParam(r)

	counts, err := s.uc.Stats.DivisionCounts(ctx, name)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	if len(counts) == 0 {
		errutil.HandleHTTP(ctx, w, goerr.New("sheet has no division data", goerr.V("sheet", name)), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.RenderDivisionBar(w, "JHAs by Division", counts); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to render division chart"), http.StatusInternalServerError)
	}
}

// riskChartHandler serves the standalone risk pie chart page
func (s *Server) riskChartHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := sheetParam(r)

	counts, err := s.uc.Stats.RiskCounts(ctx, name)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	if len(counts) == 0 {
		errutil.HandleHTTP(ctx, w, goerr.New("sheet has no risk data", goerr.V("sheet", name)), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.RenderRiskPie(w, "JHAs by Risk Level", counts); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to render risk chart"), http.StatusInternalServerError)
	}
}
