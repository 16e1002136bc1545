// internal/app/features/employees/list.go
package employees

import (
	"net/http"
	"strings"

	employeestore "github.com/dalemusser/taskhub/internal/app/store/employees"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList returns a page of employees.
//
// Route: GET /api/employees?page=&limit=&department=&q=&sortBy=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params := employeestore.ListParams{
		Page:       paging.ParsePage(r),
		Limit:      paging.ParseLimit(r),
		Department: strings.TrimSpace(query.Get(r, "department")),
		Query:      strings.TrimSpace(query.Get(r, "q")),
		SortBy:     strings.TrimSpace(query.Get(r, "sortBy")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list employees")
	defer cancel()

	env, err := h.Store.List(ctx, params)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, env)
}
