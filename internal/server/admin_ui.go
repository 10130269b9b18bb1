package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/admin.html templates/watch.html
var uiTemplatesFS embed.FS

var adminTmpl = template.Must(
	template.New("admin.html").ParseFS(uiTemplatesFS, "templates/admin.html"),
)

var watchTmpl = template.Must(
	template.New("watch.html").ParseFS(uiTemplatesFS, "templates/watch.html"),
)

type adminPageData struct {
	Routes []RouteDoc
}

func RegisterAdminUI(mux *http.ServeMux, rr *RouteRegistry) {
	// JSON list (handy for tooling)
	mux.HandleFunc("GET /_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})

	// HTML
	mux.HandleFunc("GET /_/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := adminTmpl.Execute(w, adminPageData{Routes: rr.List()}); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	})
}

// RegisterWatchUI serves a read-only HTML view of a combat session.
func RegisterWatchUI(mux *http.ServeMux, app *App) {
	mux.HandleFunc("GET /watch/{id}", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		s, ok, err := app.Sessions.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			app.mu.Unlock()
			http.Error(w, err.Error(), 500)
			return
		}
		if !ok {
			app.mu.Unlock()
			http.NotFound(w, r)
			return
		}
		snap := s.Snapshot()
		app.mu.Unlock()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := watchTmpl.Execute(w, snap); err != nil {
			http.Error(w, err.Error(), 500)
		}
	})
}
