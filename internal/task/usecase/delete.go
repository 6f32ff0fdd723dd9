package usecase

import (
	"context"
	"errors"

	"pomoflow/internal/model"
	"pomoflow/internal/task"
	"pomoflow/internal/task/repository"
)

func (u *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	cur, err := u.repo.Get(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		u.l.Errorf(ctx, "task.usecase.Delete: get failed: %v", err)
		return err
	}

	if err := u.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		u.l.Errorf(ctx, "task.usecase.Delete: repository failed: %v", err)
		return err
	}

	u.dropCalendarEvent(ctx, cur)

	return nil
}
