// internal/app/features/employees/update.go
package employees

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleUpdate applies a partial update. Fields absent from the body are
// left unchanged; unknown fields are ignored.
//
// Route: PATCH /api/employees/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsObjectID(id) {
		respond.Error(w, r, h.Log, inputval.ErrInvalidID)
		return
	}

	var req inputval.UpdateEmployeeRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	upd, err := req.Update()
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update employee")
	defer cancel()

	emp, err := h.Store.UpdateByID(ctx, id, upd)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if emp == nil {
		respond.NotFound(w, r, h.Log, notFoundMsg)
		return
	}

	h.Log.Debug("employee updated", zap.String("employee_id", id))
	respond.JSON(w, http.StatusOK, emp)
}
