package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/utils/errutil"
)

const (
	themeCookieName   = "theme"
	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// themeHandler stores the chosen theme in a cookie. The theme is pure
// presentation: it never touches loaded data or filter state.
func (s *Server) themeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid theme request"), http.StatusBadRequest)
		return
	}

	theme, err := types.ParseTheme(req.Theme)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookieName,
		Value:    theme.String(),
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"theme": theme.String()})
}
