package usecase

import (
	"context"
	"fmt"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
)

// Stats returns the caller's open and done task counts.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	var out task.StatsOutput
	err := uc.repo.WithTx(ctx, func(r repository.Repository) error {
		u, err := uc.upsertUser(ctx, r, sc)
		if err != nil {
			return err
		}

		open, done, err := r.CountTasksByStatus(ctx, u.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Stats CountTasksByStatus user_id=%d: %v", u.ID, err)
			return err
		}

		out = task.StatsOutput{User: u, Open: open, Done: done}
		return nil
	})
	return out, err
}

// upsertUser maps any failure to task.ErrUserNotFound so callers can render
// an "account not recognized" reply.
func (uc *implUseCase) upsertUser(ctx context.Context, r repository.Repository, sc model.Scope) (model.User, error) {
	if sc.TelegramID == 0 {
		return model.User{}, task.ErrUserNotFound
	}

	lang := sc.Language
	if lang == "" {
		lang = uc.defaultLanguage
	}

	u, err := r.UpsertUser(ctx, repository.UpsertUserOptions{
		TelegramID: sc.TelegramID,
		FullName:   sc.FullName,
		Username:   sc.Username,
		Language:   lang,
		Now:        uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.upsertUser telegram_id=%d: %v", sc.TelegramID, err)
		return model.User{}, fmt.Errorf("%w: %w", task.ErrUserNotFound, err)
	}
	return u, nil
}
