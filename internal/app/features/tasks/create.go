// internal/app/features/tasks/create.go
package tasks

import (
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate creates a task. The assignee must be an existing employee.
//
// Route: POST /api/tasks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req inputval.CreateTaskRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	task, err := req.Task()
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create task")
	defer cancel()

	created, err := h.Store.Create(ctx, task)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	h.Log.Info("task created",
		zap.String("task_id", created.ID.Hex()),
		zap.String("assignee", created.Assignee.Hex()))
	respond.JSON(w, http.StatusCreated, created)
}
