package usecase

import (
	"context"
	"time"

	"pomoflow/internal/model"
	"pomoflow/pkg/gcalendar"
)

// defaultEventMinutes is the event length used when a task has no
// estimated duration.
const defaultEventMinutes = 30

// syncCalendarEvent mirrors a scheduled task into Google Calendar and
// records the event ID on the task. Sync is best-effort: the task is
// already persisted, so failures are logged and swallowed.
func (u *implUseCase) syncCalendarEvent(ctx context.Context, t model.Task) {
	if u.calendar == nil || t.DueDate == nil {
		return
	}

	minutes := defaultEventMinutes
	if t.EstimatedMinutes != nil && *t.EstimatedMinutes > 0 {
		minutes = *t.EstimatedMinutes
	}

	start := *t.DueDate
	event, err := u.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute),
		Timezone:    u.timezone,
	})
	if err != nil {
		u.l.Warnf(ctx, "task.usecase: calendar sync failed for task %s: %v", t.ID, err)
		return
	}

	t.CalendarEventID = event.ID
	if _, err := u.repo.Update(ctx, model.Scope{UserEmail: t.UserEmail}, t); err != nil {
		u.l.Warnf(ctx, "task.usecase: failed to record calendar event %s on task %s: %v", event.ID, t.ID, err)
		return
	}

	u.l.Infof(ctx, "task.usecase: calendar event %s created for task %s", event.ID, t.ID)
}

// dropCalendarEvent removes the task's mirrored event, if any. Best-effort
// like syncCalendarEvent: a stale event is not worth failing the deletion.
func (u *implUseCase) dropCalendarEvent(ctx context.Context, t model.Task) {
	if u.calendar == nil || t.CalendarEventID == "" {
		return
	}

	if err := u.calendar.DeleteEvent(ctx, "", t.CalendarEventID); err != nil {
		u.l.Warnf(ctx, "task.usecase: failed to delete calendar event %s for task %s: %v", t.CalendarEventID, t.ID, err)
		return
	}

	u.l.Infof(ctx, "task.usecase: calendar event %s deleted for task %s", t.CalendarEventID, t.ID)
}
