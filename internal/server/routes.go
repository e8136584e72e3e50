package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dylan-park/TradeBell/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", handler(s.getV1Status))

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", handler(s.getV1Accounts))
			r.Get("/{name}", handler(s.getV1Account))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
