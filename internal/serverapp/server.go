package serverapp

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/config"
	"github.com/smp46/slaythecli/internal/httpmw"
	"github.com/smp46/slaythecli/internal/server"
	"github.com/smp46/slaythecli/internal/telemetry"
	staticfiles "github.com/smp46/slaythecli/static"
)

type Options struct {
	Config *config.Config
	Logger zerolog.Logger
	// Seed makes every session RNG reproducible; zero means time-seeded.
	Seed int64
}

// NewHandler wires the combat engine, its repos, and the HTTP surface into a
// single handler. The returned App is exposed for tests.
func NewHandler(opts Options) (http.Handler, *server.App, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}

	catalog, err := opts.Config.Catalog()
	if err != nil {
		return nil, nil, err
	}
	characters, err := opts.Config.CharacterMap()
	if err != nil {
		return nil, nil, err
	}

	app := &server.App{
		Sessions:   combat.NewMemoryRepo(),
		Events:     telemetry.NewMemoryRepository(),
		Catalog:    catalog,
		Characters: characters,
		Cfg:        opts.Config,
		Seed:       opts.Seed,
	}

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.FS(staticfiles.EmbeddedFS()))))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"service":"slaythecli","time":"` +
			time.Now().UTC().Format(time.RFC3339) + `"}`))
	})

	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)
	server.RegisterAdminUI(mux, rr)
	server.RegisterWatchUI(mux, app)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
	)

	return handler, app, nil
}
