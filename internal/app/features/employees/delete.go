// internal/app/features/employees/delete.go
package employees

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes an employee. Their tasks are kept.
//
// Route: DELETE /api/employees/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsObjectID(id) {
		respond.Error(w, r, h.Log, inputval.ErrInvalidID)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete employee")
	defer cancel()

	deleted, err := h.Store.DeleteByID(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if !deleted {
		respond.NotFound(w, r, h.Log, notFoundMsg)
		return
	}

	h.Log.Info("employee deleted", zap.String("employee_id", id))
	respond.JSON(w, http.StatusOK, deleteResponse{Success: true})
}
