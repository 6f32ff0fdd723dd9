package usecase

import (
	"context"
	"strings"

	"pomoflow/internal/model"
	"pomoflow/internal/task"
	"pomoflow/internal/task/repository"
	"pomoflow/pkg/calendar"
	"pomoflow/pkg/recurrence"
	"pomoflow/pkg/taskparse"
)

func (u *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrTitleRequired
	}

	priority := taskparse.PriorityMedium
	if input.Priority != "" {
		p, ok := taskparse.ParsePriority(input.Priority)
		if !ok {
			return model.Task{}, task.ErrInvalidPriority
		}
		priority = p
	}

	// The raw string is validated against the real calendar before any
	// time value is built from it, so "2025-11-31" is rejected instead of
	// silently becoming December 1st.
	v := calendar.ValidateISODateString(input.DueDate)
	if !v.Valid {
		u.l.Warnf(ctx, "task.usecase.Create: rejected due date %q: %s", input.DueDate, v.Error)
		return model.Task{}, task.ErrInvalidDueDate
	}

	opt := repository.CreateOptions{
		Scope:            sc,
		Title:            title,
		Description:      input.Description,
		Priority:         priority,
		EstimatedMinutes: input.EstimatedMinutes,
		Category:         input.Category,
		Tags:             input.Tags,
	}

	if input.DueDate != "" {
		t, err := calendar.ParseISO(input.DueDate)
		if err != nil {
			return model.Task{}, task.ErrInvalidDueDate
		}
		opt.DueDate = &t
	}

	if input.RecurrencePattern != "" || input.IsRecurring {
		pattern, ok := recurrence.ParsePattern(input.RecurrencePattern)
		if !ok {
			return model.Task{}, task.ErrInvalidRecurrence
		}
		opt.IsRecurring = true
		opt.RecurrencePattern = &pattern
	}

	created, err := u.repo.Create(ctx, opt)
	if err != nil {
		u.l.Errorf(ctx, "task.usecase.Create: repository failed: %v", err)
		return model.Task{}, err
	}

	u.syncCalendarEvent(ctx, created)

	return created, nil
}
