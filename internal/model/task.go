package model

import (
	"time"

	"pomoflow/pkg/recurrence"
	"pomoflow/pkg/taskparse"
)

// Task is a user task with optional scheduling and recurrence metadata.
type Task struct {
	ID                string
	UserEmail         string
	Title             string
	Description       string
	Priority          taskparse.Priority
	EstimatedMinutes  *int
	DueDate           *time.Time // UTC
	Completed         bool
	Category          string
	Tags              []string
	IsRecurring       bool
	RecurrencePattern *recurrence.Pattern // non-nil iff IsRecurring
	// CalendarEventID is the mirrored Google Calendar event, empty when the
	// task was never synced.
	CalendarEventID string
	// ParentTaskID points at the FIRST task of a recurring chain, not the
	// immediate predecessor: the chain is flattened so every successor
	// shares one root.
	ParentTaskID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ChainRoot returns the ID a successor task must record as its parent.
func (t Task) ChainRoot() string {
	if t.ParentTaskID != "" {
		return t.ParentTaskID
	}
	return t.ID
}
