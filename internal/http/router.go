package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kritsw/bankconv/internal/http/convertapi"
	"github.com/kritsw/bankconv/internal/http/historyapi"
	"github.com/kritsw/bankconv/internal/http/templates"
)

func New(
	convertV1 *convertapi.Handler,
	templatesV1 *templates.Handler,
	historyV1 *historyapi.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/convert", convertV1.Routes)

		r.Route("/templates", templatesV1.Routes)

		r.Route("/conversions", func(r chi.Router) {
			historyV1.Routes(r)
		})
	})

	return router
}
