package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/fc-labs/store-management-service/internal/auth"
)

// NewRouter assembles the route tree. The health endpoint is open; the
// product tree requires basic auth, reads need the USER role and all
// mutations need ADMIN. The static priceChange segment is registered on
// the same subtree as /{id} and chi routes it first.
func NewRouter(h *Handler, authorizer auth.Authorizer, logger *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Get("/healthz", h.Healthz)

	r.Route("/products", func(r chi.Router) {
		r.Use(BasicAuth(authorizer))

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(auth.RoleUser))
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.GetProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(auth.RoleAdmin))
			r.Post("/", h.CreateProduct)
			r.Post("/priceChange", h.ChangePrice)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})
	})

	return r
}
