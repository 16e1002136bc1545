// internal/app/features/employees/tasks.go
package employees

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeTasks returns a page of the tasks assigned to an employee. An
// unknown employee id yields an empty page rather than 404.
//
// Route: GET /api/employees/{id}/tasks?page=&limit=
func (h *Handler) ServeTasks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsObjectID(id) {
		respond.Error(w, r, h.Log, inputval.ErrInvalidID)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list employee tasks")
	defer cancel()

	env, err := h.Store.ListTasks(ctx, id, paging.ParsePage(r), paging.ParseLimit(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, env)
}
