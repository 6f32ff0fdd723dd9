package usecase

import (
	"context"
	"strings"

	"pomoflow/internal/model"
	"pomoflow/internal/task"
)

func (u *implUseCase) Parse(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	parsed := u.parser.Parse(input.Text, u.clock())

	u.l.Debugf(ctx, "task.usecase.Parse: %q -> title=%q priority=%s", input.Text, parsed.Title, parsed.Priority)

	return task.ParseOutput{Parsed: parsed}, nil
}
