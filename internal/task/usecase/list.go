package usecase

import (
	"context"

	"pomoflow/internal/model"
	"pomoflow/internal/task"
	"pomoflow/internal/task/repository"
)

func (u *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := u.repo.List(ctx, sc, repository.ListOptions{
		Completed: input.Completed,
		Category:  input.Category,
		DueBefore: input.DueBefore,
	})
	if err != nil {
		u.l.Errorf(ctx, "task.usecase.List: repository failed: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
