package usecase

import (
	"context"
	"errors"
	"strings"

	"pomoflow/internal/model"
	"pomoflow/internal/task"
	"pomoflow/internal/task/repository"
	"pomoflow/pkg/calendar"
	"pomoflow/pkg/recurrence"
	"pomoflow/pkg/taskparse"
)

func (u *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	cur, err := u.repo.Get(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		u.l.Errorf(ctx, "task.usecase.Update: get failed: %v", err)
		return model.Task{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrTitleRequired
		}
		cur.Title = title
	}
	if input.Description != nil {
		cur.Description = *input.Description
	}
	if input.Priority != nil {
		p, ok := taskparse.ParsePriority(*input.Priority)
		if !ok {
			return model.Task{}, task.ErrInvalidPriority
		}
		cur.Priority = p
	}
	if input.EstimatedMinutes != nil {
		cur.EstimatedMinutes = input.EstimatedMinutes
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			cur.DueDate = nil
		} else {
			v := calendar.ValidateISODateString(*input.DueDate)
			if !v.Valid {
				return model.Task{}, task.ErrInvalidDueDate
			}
			t, err := calendar.ParseISO(*input.DueDate)
			if err != nil {
				return model.Task{}, task.ErrInvalidDueDate
			}
			cur.DueDate = &t
		}
	}
	if input.Completed != nil {
		cur.Completed = *input.Completed
	}
	if input.Category != nil {
		cur.Category = *input.Category
	}
	if input.Tags != nil {
		cur.Tags = input.Tags
	}
	if input.IsRecurring != nil {
		cur.IsRecurring = *input.IsRecurring
		if !cur.IsRecurring {
			cur.RecurrencePattern = nil
		}
	}
	if input.RecurrencePattern != nil {
		if *input.RecurrencePattern == "" {
			cur.IsRecurring = false
			cur.RecurrencePattern = nil
		} else {
			pattern, ok := recurrence.ParsePattern(*input.RecurrencePattern)
			if !ok {
				return model.Task{}, task.ErrInvalidRecurrence
			}
			cur.IsRecurring = true
			cur.RecurrencePattern = &pattern
		}
	}

	// A recurring task without a pattern would silently never recur.
	if cur.IsRecurring && cur.RecurrencePattern == nil {
		return model.Task{}, task.ErrInvalidRecurrence
	}

	updated, err := u.repo.Update(ctx, sc, cur)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		u.l.Errorf(ctx, "task.usecase.Update: repository failed: %v", err)
		return model.Task{}, err
	}

	return updated, nil
}
