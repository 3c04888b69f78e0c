package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shoply/pkg/app"
	"github.com/ghuser/shoply/pkg/auth"
	"github.com/ghuser/shoply/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/shoply/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
// Reads accept anonymous viewers; writes require an authenticated session.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/products", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth(a.SessionStore, a.Logger))
			r.Get("/", handlers.NewGetProductsHandler(svcs).Execute)
			r.Get("/search", handlers.NewSearchProductsHandler(svcs).Execute)
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Post("/{id}/like", handlers.NewPostLikeHandler(svcs).Execute)
		})
	})
}
