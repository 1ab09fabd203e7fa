package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"lookbook/internal/http/handlers"
	"lookbook/internal/infra"
	"lookbook/internal/middleware"
)

// RouterOptions tunes the outer HTTP surface; the handlers themselves do not
// change with it.
type RouterOptions struct {
	Logger          *infra.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts RouterOptions) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.Logger(*opts.Logger))
	}
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/universes", func(r chi.Router) {
		r.Get("/", app.ListUniverses)
		r.Post("/", app.CreateUniverse)
		r.Get("/{id}", app.GetUniverse)
		r.Put("/{id}", app.UpdateUniverse)
		r.Delete("/{id}", app.DeleteUniverse)
		r.Get("/{id}/anchors", app.UniverseAnchors)
		r.Get("/{id}/narrative", app.UniverseNarrative)
	})

	r.Route("/v1/locations", func(r chi.Router) {
		r.Get("/", app.ListLocations)
		r.Post("/", app.CreateLocation)
		r.Get("/{id}", app.GetLocation)
		r.Put("/{id}", app.UpdateLocation)
		r.Delete("/{id}", app.DeleteLocation)
	})

	r.Route("/v1/models", func(r chi.Router) {
		r.Get("/", app.ListModels)
		r.Post("/", app.CreateModel)
		r.Get("/{id}", app.GetModel)
		r.Put("/{id}", app.UpdateModel)
		r.Delete("/{id}", app.DeleteModel)
	})

	r.Route("/v1/looks", func(r chi.Router) {
		r.Get("/", app.ListLooks)
		r.Post("/", app.CreateLook)
		r.Get("/{id}", app.GetLook)
		r.Put("/{id}", app.UpdateLook)
		r.Delete("/{id}", app.DeleteLook)
	})

	r.Post("/v1/shoots/generate", app.GenerateShoot)
	r.Post("/v1/shoots/export", app.ExportShoot)
	r.Post("/v1/prompts/preview", app.PreviewPrompts)
	r.Get("/v1/params/options", app.ParamOptions)

	return r
}
