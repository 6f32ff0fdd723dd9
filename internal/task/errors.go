package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = errors.New("task text is empty")
	ErrTitleRequired     = errors.New("task title is required")
	ErrInvalidDueDate    = errors.New("due date does not exist in the calendar")
	ErrInvalidPriority   = errors.New("priority must be high, medium or low")
	ErrInvalidRecurrence = errors.New("unknown recurrence pattern")
	ErrTaskNotFound      = errors.New("task not found")
	ErrAlreadyCompleted  = errors.New("task is already completed")
)
