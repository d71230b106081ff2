package usecase

import (
	"context"
	"errors"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
)

// Create adds a task for the caller. An empty priority means MEDIUM.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	if _, ok := model.NormalizeContent(input.Content); !ok {
		return model.Task{}, task.ErrContentTooShort
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	var created model.Task
	err := uc.repo.WithTx(ctx, func(r repository.Repository) error {
		u, err := uc.upsertUser(ctx, r, sc)
		if err != nil {
			return err
		}

		created, err = r.CreateTask(ctx, repository.CreateTaskOptions{
			UserID:   u.ID,
			Content:  input.Content,
			DueDate:  input.DueDate,
			Priority: input.Priority,
			Now:      uc.now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, task.ErrUserNotFound) {
			uc.l.Errorf(ctx, "uc.Create telegram_id=%d: %v", sc.TelegramID, err)
		}
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "uc.Create: task %d created for telegram_id=%d", created.ID, sc.TelegramID)
	return created, nil
}
