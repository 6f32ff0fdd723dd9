package usecase

import (
	"context"
	"errors"

	"pomoflow/internal/model"
	"pomoflow/internal/task"
	"pomoflow/internal/task/repository"
	"pomoflow/pkg/recurrence"
)

// Complete marks a task done. For a recurring task it also creates the
// next occurrence: same title, priority and pattern, with the due date
// advanced by the pattern and the parent pointer set to the chain root so
// long chains stay flat.
func (u *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, *model.Task, error) {
	cur, err := u.repo.Get(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, nil, task.ErrTaskNotFound
		}
		u.l.Errorf(ctx, "task.usecase.Complete: get failed: %v", err)
		return model.Task{}, nil, err
	}
	if cur.Completed {
		return model.Task{}, nil, task.ErrAlreadyCompleted
	}

	cur.Completed = true
	done, err := u.repo.Update(ctx, sc, cur)
	if err != nil {
		u.l.Errorf(ctx, "task.usecase.Complete: update failed: %v", err)
		return model.Task{}, nil, err
	}

	if !done.IsRecurring || done.RecurrencePattern == nil {
		return done, nil, nil
	}

	nextDue := recurrence.NextDueDate(done.DueDate, *done.RecurrencePattern, u.clock())

	next, err := u.repo.Create(ctx, repository.CreateOptions{
		Scope:             sc,
		Title:             done.Title,
		Description:       done.Description,
		Priority:          done.Priority,
		EstimatedMinutes:  done.EstimatedMinutes,
		DueDate:           nextDue,
		Category:          done.Category,
		Tags:              done.Tags,
		IsRecurring:       true,
		RecurrencePattern: done.RecurrencePattern,
		ParentTaskID:      done.ChainRoot(),
	})
	if err != nil {
		// The completion itself succeeded; surface it and report the
		// failed spawn separately.
		u.l.Errorf(ctx, "task.usecase.Complete: failed to spawn next occurrence: %v", err)
		return done, nil, nil
	}

	u.syncCalendarEvent(ctx, next)

	return done, &next, nil
}
