// internal/app/features/tasks/list.go
package tasks

import (
	"net/http"
	"strings"

	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList returns a page of tasks. status and priority are matched
// exactly; assignee must be an employee id.
//
// Route: GET /api/tasks?page=&limit=&status=&priority=&assignee=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params := taskstore.ListParams{
		Page:     paging.ParsePage(r),
		Limit:    paging.ParseLimit(r),
		Status:   strings.TrimSpace(query.Get(r, "status")),
		Priority: strings.TrimSpace(query.Get(r, "priority")),
		Assignee: strings.TrimSpace(query.Get(r, "assignee")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list tasks")
	defer cancel()

	env, err := h.Store.List(ctx, params)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, env)
}
