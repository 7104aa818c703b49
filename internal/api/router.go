package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"property-data-pipeline/internal/api/handler"
)

// NewRouter wires the run endpoints and the swagger UI.
func NewRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/runs", h.CreateRun)
		r.Get("/runs", h.ListRuns)
		r.Get("/runs/{id}", h.GetRun)
		r.Get("/runs/{id}/metrics", h.GetRunMetrics)
		r.Get("/runs/{id}/errors", h.GetRunErrors)
		r.Get("/runs/{id}/files", h.GetRunFiles)
		r.Get("/download/{id}/{filename}", h.DownloadFile)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
