// internal/app/features/employees/view.go
package employees

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeView returns one employee.
//
// Route: GET /api/employees/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsObjectID(id) {
		respond.Error(w, r, h.Log, inputval.ErrInvalidID)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get employee")
	defer cancel()

	emp, err := h.Store.GetByID(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if emp == nil {
		respond.NotFound(w, r, h.Log, notFoundMsg)
		return
	}
	respond.JSON(w, http.StatusOK, emp)
}
