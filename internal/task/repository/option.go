package repository

import (
	"time"

	"pomoflow/internal/model"
	"pomoflow/pkg/recurrence"
	"pomoflow/pkg/taskparse"
)

// CreateOptions holds the parameters for persisting a new task.
type CreateOptions struct {
	Scope             model.Scope
	Title             string
	Description       string
	Priority          taskparse.Priority
	EstimatedMinutes  *int
	DueDate           *time.Time
	Category          string
	Tags              []string
	IsRecurring       bool
	RecurrencePattern *recurrence.Pattern
	ParentTaskID      string
}

// ListOptions holds the filters for listing tasks.
type ListOptions struct {
	Completed *bool      // nil means both
	Category  string     // empty means all categories
	DueBefore *time.Time // only tasks due strictly before this instant
}
