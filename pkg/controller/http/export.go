package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/utils/errutil"
	"github.com/safework-lab/jhaboard/pkg/utils/safe"
)

// exportHandler streams the filtered view as the requested document.
// The document is rendered before any header is written so failures
// still produce a proper error status.
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := types.ParseExportFormat(chi.URLParam(r, "format"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	q, err := queryFromRequest(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if _, err := s.writeExport(ctx, &buf, format, sheetParam(r), q); err != nil {
		handleError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	safe.Write(ctx, w, buf.Bytes())
}

func (s *Server) writeExport(ctx context.Context, w io.Writer, format types.ExportFormat, sheet types.SheetName, q model.Query) (*model.ExportEntry, error) {
	switch format {
	case types.ExportFormatCSV:
		return s.uc.Export.WriteCSV(ctx, w, sheet, q)
	case types.ExportFormatXLSX:
		return s.uc.Export.WriteXLSX(ctx, w, sheet, q)
	default:
		return s.uc.Export.WritePDF(ctx, w, sheet, q)
	}
}
