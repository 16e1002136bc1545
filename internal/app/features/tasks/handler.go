// internal/app/features/tasks/handler.go
package tasks

import (
	"context"

	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the subset of taskstore.Store the handlers use.
type Store interface {
	Create(ctx context.Context, task models.Task) (models.Task, error)
	List(ctx context.Context, p taskstore.ListParams) (paging.Envelope[models.Task], error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	UpdateByID(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// Handler is the feature-level entry point for Tasks.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

const notFoundMsg = "Task not found"

type deleteResponse struct {
	Success bool `json:"success"`
}
