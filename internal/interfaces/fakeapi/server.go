package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
)

type routerOptions struct {
	profiler bool
}

type RouterOption func(*routerOptions)

// WithProfiler mounts net/http/pprof under /debug.
func WithProfiler(enabled bool) RouterOption {
	return func(o *routerOptions) {
		o.profiler = enabled
	}
}

// NewRouter mounts the REST contract under /api.
func NewRouter(handler *Handler, logger *logging.Logger, opts ...RouterOption) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Get("/healthz", handler.Healthz)
	if o.profiler {
		r.Mount("/debug", middleware.Profiler())
	}
	r.Route("/api", func(r chi.Router) {
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", handler.ListTeams)
			r.Post("/", handler.CreateTeam)
			r.Get("/draw-sheets", handler.DrawSheets)
			r.Get("/promotion-results", handler.PromotionResults)
			r.Get("/by-institute", handler.ListTeamsByInstitute)
			r.Get("/{id}", handler.GetTeam)
			r.Put("/{id}", handler.UpdateTeam)
			r.Delete("/{id}", handler.DeleteTeam)
		})
		r.Route("/players", func(r chi.Router) {
			r.Get("/", handler.ListPlayers)
			r.Post("/", handler.CreatePlayer)
			r.Get("/{id}", handler.GetPlayer)
			r.Put("/{id}", handler.UpdatePlayer)
			r.Delete("/{id}", handler.DeletePlayer)
		})
	})

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, r)))
}
