package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pomoflow/internal/model"
	"pomoflow/internal/task/repository"
	pkgLog "pomoflow/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	l     pkgLog.Logger
}

// New creates an in-memory task repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		tasks: make(map[string]model.Task),
		l:     l,
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	now := time.Now().UTC()

	t := model.Task{
		ID:                uuid.NewString(),
		UserEmail:         opt.Scope.UserEmail,
		Title:             opt.Title,
		Description:       opt.Description,
		Priority:          opt.Priority,
		EstimatedMinutes:  opt.EstimatedMinutes,
		DueDate:           opt.DueDate,
		Category:          opt.Category,
		Tags:              opt.Tags,
		IsRecurring:       opt.IsRecurring,
		RecurrencePattern: opt.RecurrencePattern,
		ParentTaskID:      opt.ParentTaskID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	r.mu.Lock()
	r.tasks[t.ID] = t
	r.mu.Unlock()

	return t, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	if !ok || t.UserEmail != sc.UserEmail {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opt repository.ListOptions) ([]model.Task, error) {
	r.mu.RLock()
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.UserEmail != sc.UserEmail {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.DueBefore != nil {
			if t.DueDate == nil || !t.DueDate.Before(*opt.DueBefore) {
				continue
			}
		}
		out = append(out, t)
	}
	r.mu.RUnlock()

	// Newest first, matching the creation feed ordering.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.tasks[task.ID]
	if !ok || cur.UserEmail != sc.UserEmail {
		return model.Task{}, repository.ErrNotFound
	}

	task.UserEmail = cur.UserEmail
	task.CreatedAt = cur.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.tasks[task.ID] = task

	return task, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserEmail != sc.UserEmail {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
