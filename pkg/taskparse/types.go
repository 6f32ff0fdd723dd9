package taskparse

import (
	"time"

	"pomoflow/pkg/recurrence"
)

// Priority is the urgency bucket extracted from task text.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority converts a raw string into a Priority.
func ParsePriority(raw string) (Priority, bool) {
	switch Priority(raw) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(raw), true
	}
	return "", false
}

// Recurrence is the result of recurrence detection over task text.
type Recurrence struct {
	IsRecurring bool
	Pattern     recurrence.Pattern // non-empty iff IsRecurring
}

// ParsedTask is the structured record produced from one raw text input.
// Description always carries the untouched original text; Title is the
// cleaned version. DueDate is nil whenever no date expression was found or
// the expression named a date that does not exist in the calendar.
type ParsedTask struct {
	Title             string
	Description       string
	DueDate           *time.Time // UTC instant
	Priority          Priority
	EstimatedMinutes  *int
	IsRecurring       bool
	RecurrencePattern *recurrence.Pattern // non-nil iff IsRecurring
}
