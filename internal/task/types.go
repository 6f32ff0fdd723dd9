package task

import (
	"time"

	"pomoflow/internal/model"
	"pomoflow/pkg/taskparse"
)

// ParseInput is the input for natural-language task parsing.
type ParseInput struct {
	Text string
}

// ParseOutput wraps the extraction result.
type ParseOutput struct {
	Parsed taskparse.ParsedTask
}

// CreateInput is the input for creating a task. DueDate is the raw
// ISO-8601 string from the caller; it is validated against the calendar
// before any time value is constructed from it.
type CreateInput struct {
	Title             string
	Description       string
	Priority          string
	EstimatedMinutes  *int
	DueDate           string
	Category          string
	Tags              []string
	IsRecurring       bool
	RecurrencePattern string
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID                string
	Title             *string
	Description       *string
	Priority          *string
	EstimatedMinutes  *int
	DueDate           *string // empty string clears the due date
	Completed         *bool
	Category          *string
	Tags              []string
	IsRecurring       *bool
	RecurrencePattern *string
}

// ListInput filters the task listing.
type ListInput struct {
	Completed *bool
	Category  string
	DueBefore *time.Time
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks []model.Task
	Count int
}
