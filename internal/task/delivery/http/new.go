package http

import (
	"pomoflow/internal/task"
	pkgLog "pomoflow/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
