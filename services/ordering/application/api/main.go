package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/dosadiner/pkg/app"
	"github.com/ghuser/dosadiner/services/ordering/application/handlers"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// OrderingRoutes registers customer, menu, and order endpoints on the
// provided chi router.
func OrderingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", handlers.NewPostCustomerHandler(svcs).Execute)
			r.Get("/", handlers.NewListCustomersHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetCustomerHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutCustomerHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteCustomerHandler(svcs).Execute)
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostMenuItemHandler(svcs).Execute)
			r.Get("/", handlers.NewListMenuItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetMenuItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutMenuItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteMenuItemHandler(svcs).Execute)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutOrderHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteOrderHandler(svcs).Execute)

			r.Post("/{id}/items", handlers.NewPostOrderLineHandler(svcs).Execute)
			r.Delete("/{id}/items/{itemID}", handlers.NewDeleteOrderLineHandler(svcs).Execute)
		})
	})
}
