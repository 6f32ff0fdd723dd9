package task

import (
	"context"

	"pomoflow/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse extracts structured task data from natural language text.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Create validates and persists a new task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// List returns the caller's tasks, optionally filtered.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Update applies a partial update to an existing task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Complete marks a task done. Completing a recurring task spawns its
	// successor and returns it; otherwise the second result is nil.
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, *model.Task, error)
}
