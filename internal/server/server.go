package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the HTTP surface. Advice does not require an owner
// identity; cart routes do.
func NewRouter(cart CartService, catalog CatalogService, advice AdviceService) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	cartHandler := NewCartHandler(cart)
	catalogHandler := NewCatalogHandler(catalog)
	adviceHandler := NewAdviceHandler(advice)

	r.Route("/api", func(r chi.Router) {
		r.Get("/medicines", catalogHandler.ListMedicines)
		r.Get("/medicines/{medicine_id}", catalogHandler.GetMedicine)

		r.Post("/assistant/advice", adviceHandler.GetAdvice)

		r.Group(func(r chi.Router) {
			r.Use(OwnerAuthMiddleware)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{medicine_id}", cartHandler.UpdateQuantity)
			r.Delete("/cart/items/{medicine_id}", cartHandler.RemoveItem)
		})
	})

	return r
}
