// internal/app/features/employees/handler.go
package employees

import (
	"context"

	employeestore "github.com/dalemusser/taskhub/internal/app/store/employees"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the subset of employeestore.Store the handlers use.
type Store interface {
	Create(ctx context.Context, emp models.Employee) (models.Employee, error)
	List(ctx context.Context, p employeestore.ListParams) (paging.Envelope[models.Employee], error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	UpdateByID(ctx context.Context, id string, upd models.EmployeeUpdate) (*models.Employee, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	ListTasks(ctx context.Context, id string, page, limit int) (paging.Envelope[models.Task], error)
}

// Handler is the feature-level entry point for Employees.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

// NewHandler constructs an Employees handler bound to a store and logger.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

const notFoundMsg = "Employee not found"

type deleteResponse struct {
	Success bool `json:"success"`
}
