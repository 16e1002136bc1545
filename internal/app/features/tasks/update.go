// internal/app/features/tasks/update.go
package tasks

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleUpdate applies a partial update to a task.
//
// Route: PATCH /api/tasks/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsObjectID(id) {
		respond.Error(w, r, h.Log, inputval.ErrInvalidID)
		return
	}

	var req inputval.UpdateTaskRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	upd, err := req.Update()
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update task")
	defer cancel()

	task, err := h.Store.UpdateByID(ctx, id, upd)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if task == nil {
		respond.NotFound(w, r, h.Log, notFoundMsg)
		return
	}

	h.Log.Debug("task updated", zap.String("task_id", id))
	respond.JSON(w, http.StatusOK, task)
}
