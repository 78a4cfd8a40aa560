package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crm_pipeline/pkg/httpx/reply"
	"crm_pipeline/pkg/logx"
	"crm_pipeline/pkg/middlewarex"
)

type RouterOptions struct {
	Logger              *slog.Logger
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
}

// Router собирает chi-роутер со стандартной цепочкой middleware.
func (s Server) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(opts.Logger),
		middlewarex.Recovery,
		middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/deals", func(r chi.Router) {
			r.Get("/", handler(s.getV1Deals))
			r.Post("/", handler(s.postV1Deal))
			r.Post("/stages", handler(s.postV1DealStages))
			r.Get("/{id}", handler(s.getV1Deal))
			r.Put("/{id}", handler(s.putV1Deal))
			r.Delete("/{id}", handler(s.deleteV1Deal))
			r.Post("/{id}/stage", handler(s.postV1DealStage))
		})

		r.Route("/board", func(r chi.Router) {
			r.Get("/", handler(s.getV1Board))
			r.Get("/summary", handler(s.getV1BoardSummary))
			r.Post("/refresh", handler(s.postV1BoardRefresh))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, httpError(err))
		}
	}
}
