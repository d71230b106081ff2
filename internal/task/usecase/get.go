package usecase

import (
	"context"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
)

// GetTask reads one task owned by the caller. An unknown caller is
// task.ErrUserNotFound; a missing or foreign task is task.ErrTaskNotFound.
func (uc *implUseCase) GetTask(ctx context.Context, sc model.Scope, taskID int64) (model.Task, error) {
	u, err := uc.repo.GetUserByTelegramID(ctx, sc.TelegramID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTask GetUserByTelegramID telegram_id=%d: %v", sc.TelegramID, err)
		return model.Task{}, err
	}
	if u.ID == 0 {
		return model.Task{}, task.ErrUserNotFound
	}

	t, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTask user_id=%d task_id=%d: %v", u.ID, taskID, err)
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
