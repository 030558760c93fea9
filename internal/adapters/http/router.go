// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Lists  *handlers.ListHandler
	Items  *handlers.ItemHandler
	Users  *handlers.UserHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. auth guards every
// /api/v1 route except registration.
func NewRouter(h Handlers, auth func(http.Handler) http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%w: no route for %s", domain.ErrNotFound, req.URL.Path))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	listPath := "/lists/{" + handlers.ParamListID + "}"
	itemPath := listPath + "/items/{" + handlers.ParamItemID + "}"

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", h.Users.Register)

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/users/me", h.Users.Me)
			r.Delete("/users/me", h.Users.DeleteMe)
			r.Get("/users/me/stats", h.Users.Stats)

			r.Get("/lists", h.Lists.ListLists)
			r.Post("/lists", h.Lists.CreateList)
			r.Get(listPath, h.Lists.GetList)
			r.Put(listPath, h.Lists.UpdateList)
			r.Delete(listPath, h.Lists.DeleteList)

			r.Get(listPath+"/items", h.Items.ListItems)
			r.Post(listPath+"/items", h.Items.CreateItem)
			r.Get(itemPath, h.Items.GetItem)
			r.Put(itemPath, h.Items.UpdateItem)
			r.Delete(itemPath, h.Items.DeleteItem)
		})
	})

	return r
}
