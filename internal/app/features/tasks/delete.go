// internal/app/features/tasks/delete.go
package tasks

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Route: DELETE /api/tasks/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsObjectID(id) {
		respond.Error(w, r, h.Log, inputval.ErrInvalidID)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete task")
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

	h.Log.Info("task deleted", zap.String("task_id", id))
	respond.JSON(w, http.StatusOK, deleteResponse{Success: true})
}
