package repository

import (
	"context"
	"errors"

	"pomoflow/internal/model"
)

// ErrNotFound is returned when no task matches the given id.
var ErrNotFound = errors.New("task not found")

// Repository is the interface for task persistence.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	List(ctx context.Context, sc model.Scope, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, sc model.Scope, task model.Task) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
