package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/usecase"
	"github.com/safework-lab/jhaboard/pkg/utils/async"
	"github.com/safework-lab/jhaboard/pkg/utils/errutil"
	"github.com/safework-lab/jhaboard/pkg/utils/safe"
)

const defaultExportListLimit = 20

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// handleError maps use case sentinels to HTTP statuses
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrSheetNotFound),
		errors.Is(err, usecase.ErrRecordNotFound),
		errors.Is(err, usecase.ErrCrossTabUnavailable):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrReloadNotConfigured):
		errutil.HandleHTTP(ctx, w, err, http.StatusConflict)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

// queryFromRequest builds the row selector from the request parameters.
// Unparsable offset and limit values are rejected.
func queryFromRequest(r *http.Request) (model.Query, error) {
	q := model.Query{
		Division: r.URL.Query().Get("division"),
		Risk:     r.URL.Query().Get("risk"),
		Search:   r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return q, goerr.New("invalid offset", goerr.V("offset", raw))
		}
		q.Offset = offset
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return q, goerr.New("invalid limit", goerr.V("limit", raw))
		}
		q.Limit = limit
	}

	return q, nil
}

func sheetParam(r *http.Request) types.SheetName {
	return types.SheetName(chi.URLParam(r, "sheet"))
}

type rowResponse struct {
	ID       string   `json:"id"`
	Division string   `json:"division"`
	Risk     string   `json:"risk"`
	Values   []string `json:"values"`
}

func toRowResponse(rec *model.Record) rowResponse {
	return rowResponse{
		ID:       rec.ID.String(),
		Division: string(rec.Division),
		Risk:     string(rec.Risk),
		Values:   rec.Values,
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.Sheet.Stats(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  s.version,
		"workbook": stats,
	})
}

func (s *Server) sheetsHandler(w http.ResponseWriter, r *http.Request) {
	sheets, err := s.uc.Sheet.Sheets(r.Context())
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]any{"sheets": sheets})
}

func (s *Server) metaHandler(w http.ResponseWriter, r *http.Request) {
	meta, err := s.uc.Sheet.Meta(r.Context(), sheetParam(r))
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, meta)
}

func (s *Server) rowsHandler(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	records, total, err := s.uc.Sheet.Filter(r.Context(), sheetParam(r), q)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	rows := make([]rowResponse, len(records))
	for i, rec := range records {
		rows[i] = toRowResponse(rec)
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]any{
		"rows":  rows,
		"total": total,
	})
}

func (s *Server) rowDetailHandler(w http.ResponseWriter, r *http.Request) {
	id := model.RecordID(chi.URLParam(r, "id"))
	detail, err := s.uc.Sheet.RowDetail(r.Context(), sheetParam(r), id)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, detail)
}

func (s *Server) crossTabHandler(w http.ResponseWriter, r *http.Request) {
	ct, err := s.uc.Stats.CrossTab(r.Context(), sheetParam(r))
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, ct)
}

func (s *Server) exportsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultExportListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errutil.HandleHTTP(r.Context(), w, goerr.New("invalid limit", goerr.V("limit", raw)), http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.uc.Export.Recent(r.Context(), limit)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]any{"exports": entries})
}

func (s *Server) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if !s.uc.Reload.Configured() {
		handleError(r.Context(), w, goerr.Wrap(usecase.ErrReloadNotConfigured, "reload rejected"))
		return
	}

	async.Dispatch(r.Context(), func(ctx context.Context) error {
		_, err := s.uc.Reload.Reload(ctx)
		return err
	})

	respondJSON(r.Context(), w, http.StatusAccepted, map[string]any{"status": "accepted"})
}
