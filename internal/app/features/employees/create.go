// internal/app/features/employees/create.go
package employees

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate creates an employee from a JSON body.
//
// Route: POST /api/employees
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req inputval.CreateEmployeeRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	emp, err := req.Employee()
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create employee")
	defer cancel()

	created, err := h.Store.Create(ctx, emp)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	h.Log.Info("employee created", zap.String("employee_id", created.ID.Hex()))
	respond.JSON(w, http.StatusCreated, created)
}
