package http

import (
	"bytes"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/utils/errutil"
	"github.com/safework-lab/jhaboard/pkg/utils/safe"
)

type pageData struct {
	Title   string
	Theme   types.Theme
	Sheets  []*model.Sheet
	Active  string
	Version string
}

// themeFromRequest reads the theme cookie, falling back to light for a
// missing or unknown value.
func themeFromRequest(r *http.Request) types.Theme {
	cookie, err := r.Cookie(themeCookieName)
	if err != nil {
		return types.ThemeLight
	}

	theme, err := types.ParseTheme(cookie.Value)
	if err != nil {
		return types.ThemeLight
	}
	return theme
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sheets, err := s.uc.Sheet.Sheets(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	active := r.URL.Query().Get("sheet")
	if active == "" && len(sheets) > 0 {
		active = sheets[0].Name.String()
	}

	data := pageData{
		Title:   s.uc.Dashboard().Title,
		Theme:   themeFromRequest(r),
		Sheets:  sheets,
		Active:  active,
		Version: s.version,
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to render page"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safe.Write(ctx, w, buf.Bytes())
}
