package usecase

import (
	"context"
	"errors"
	"time"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
)

// mutation applies one owner-scoped change and reports whether a row matched.
type mutation func(r repository.Repository, userID int64, now time.Time) (bool, error)

// SetDone marks or unmarks a task. Repeating the same call is harmless.
func (uc *implUseCase) SetDone(ctx context.Context, sc model.Scope, taskID int64, done bool) error {
	return uc.mutate(ctx, sc, "SetDone", taskID, func(r repository.Repository, userID int64, now time.Time) (bool, error) {
		return r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: userID, TaskID: taskID, Done: done, Now: now})
	})
}

// Delete removes a task permanently.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID int64) error {
	return uc.mutate(ctx, sc, "Delete", taskID, func(r repository.Repository, userID int64, _ time.Time) (bool, error) {
		return r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: userID, TaskID: taskID})
	})
}

// UpdateContent replaces a task's text.
func (uc *implUseCase) UpdateContent(ctx context.Context, sc model.Scope, taskID int64, content string) error {
	if _, ok := model.NormalizeContent(content); !ok {
		return task.ErrContentTooShort
	}
	return uc.mutate(ctx, sc, "UpdateContent", taskID, func(r repository.Repository, userID int64, now time.Time) (bool, error) {
		return r.UpdateTaskContent(ctx, repository.UpdateTaskContentOptions{UserID: userID, TaskID: taskID, Content: content, Now: now})
	})
}

// UpdatePriority changes a task's priority.
func (uc *implUseCase) UpdatePriority(ctx context.Context, sc model.Scope, taskID int64, priority model.Priority) error {
	if !priority.Valid() {
		return task.ErrInvalidPriority
	}
	return uc.mutate(ctx, sc, "UpdatePriority", taskID, func(r repository.Repository, userID int64, now time.Time) (bool, error) {
		return r.UpdateTaskPriority(ctx, repository.UpdateTaskPriorityOptions{UserID: userID, TaskID: taskID, Priority: priority, Now: now})
	})
}

// Snooze pushes the due date forward; an undated task becomes due at now + minutes.
func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, taskID int64, minutes int) error {
	if minutes < 1 || minutes > task.MaxSnoozeMinutes {
		return task.ErrInvalidSnooze
	}
	return uc.mutate(ctx, sc, "Snooze", taskID, func(r repository.Repository, userID int64, now time.Time) (bool, error) {
		return r.SnoozeTask(ctx, repository.SnoozeTaskOptions{
			UserID: userID,
			TaskID: taskID,
			Delta:  time.Duration(minutes) * time.Minute,
			Now:    now,
		})
	})
}

// mutate runs the user upsert and fn in one transaction. A mutation that
// matched no row becomes task.ErrTaskNotFound, whether the task is missing
// or owned by someone else.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, op string, taskID int64, fn mutation) error {
	var affected bool
	err := uc.repo.WithTx(ctx, func(r repository.Repository) error {
		u, err := uc.upsertUser(ctx, r, sc)
		if err != nil {
			return err
		}
		affected, err = fn(r, u.ID, uc.now())
		return err
	})
	if err != nil {
		if !errors.Is(err, task.ErrUserNotFound) && !errors.Is(err, task.ErrContentTooShort) {
			uc.l.Errorf(ctx, "uc.%s telegram_id=%d task_id=%d: %v", op, sc.TelegramID, taskID, err)
		}
		return err
	}
	if !affected {
		uc.l.Infof(ctx, "uc.%s telegram_id=%d task_id=%d: no row affected", op, sc.TelegramID, taskID)
		return task.ErrTaskNotFound
	}
	return nil
}
