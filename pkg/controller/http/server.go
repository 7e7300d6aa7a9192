package http

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/frontend"
	"github.com/safework-lab/jhaboard/pkg/usecase"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	tmpl    *template.Template
	version string
}

type Options func(*Server)

func WithVersion(version string) Options {
	return func(s *Server) {
		s.version = version
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.ParseFS(frontend.StaticFiles, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page templates")
	}
	s.tmpl = tmpl

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// Dashboard page
	r.Get("/", s.pageHandler)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.healthHandler)
		r.Get("/sheets", s.sheetsHandler)
		r.Route("/sheets/{sheet}", func(r chi.Router) {
			r.Get("/meta", s.metaHandler)
			r.Get("/rows", s.rowsHandler)
			r.Get("/rows/{id}", s.rowDetailHandler)
			r.Get("/crosstab", s.crossTabHandler)
		})
		r.Get("/exports", s.exportsHandler)
		r.Post("/reload", s.reloadHandler)
		r.Post("/theme", s.themeHandler)
	})

	// Standalone chart pages consumed by the dashboard iframes
	r.Get("/charts/{sheet}/division", s.divisionChartHandler)
	r.Get("/charts/{sheet}/risk", s.riskChartHandler)

	// Downloads
	r.Get("/export/{sheet}/{format}", s.exportHandler)

	// Static assets
	staticFS, err := fs.Sub(frontend.StaticFiles, "static")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind static dir")
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
