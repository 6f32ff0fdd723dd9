package usecase

import (
	"time"

	"pomoflow/internal/task/repository"
	"pomoflow/pkg/gcalendar"
	pkgLog "pomoflow/pkg/log"
	"pomoflow/pkg/taskparse"
)

type implUseCase struct {
	l        pkgLog.Logger
	parser   *taskparse.Parser
	repo     repository.Repository
	calendar *gcalendar.Client // nil disables calendar sync
	timezone string
	clock    func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	parser *taskparse.Parser,
	repo repository.Repository,
	calendar *gcalendar.Client,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		parser:   parser,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
		clock:    time.Now,
	}
}
