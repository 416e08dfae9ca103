package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/app/handler"
	"github.com/herizorandria/go-link-gate/internal/metrics"
	"github.com/herizorandria/go-link-gate/internal/middleware"
)

// Init wires the router: resolution routes, the creation API and the
// operational endpoints.
func Init(resolve *handler.ResolveHandler, links *handler.LinkHandler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithClientIP)

	r.Get("/ping", links.PingDB)
	r.Get("/metrics", metrics.Handler)
	r.Post("/api/links", links.Create)

	r.Get("/{code}", resolve.Resolve)
	r.Post("/{code}", resolve.SubmitPassword)
	r.Post("/{code}/verify", resolve.VerifyChallenge)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short code is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
