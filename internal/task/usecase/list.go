package usecase

import (
	"context"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
)

// List returns one page of the caller's tasks. When a page past the first
// comes back empty it retries once at the last page that has rows.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	input = normalizeListInput(input)
	done := input.Status.Done()

	var out task.ListOutput
	err := uc.repo.WithTx(ctx, func(r repository.Repository) error {
		u, err := uc.upsertUser(ctx, r, sc)
		if err != nil {
			return err
		}

		opt := repository.ListTasksOptions{
			UserID:   u.ID,
			Done:     &done,
			Priority: input.Priority,
			Date:     input.Date,
			Now:      uc.now(),
			Location: uc.dateMath.Location(),
			Limit:    uc.pageSize,
		}

		page := input.Page
		opt.Offset = task.Offset(page, uc.pageSize)
		tasks, total, err := r.ListTasks(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListTasks user_id=%d page=%d: %v", u.ID, page, err)
			return err
		}

		if len(tasks) == 0 && page > 1 {
			if last := task.TotalPages(total, uc.pageSize); last != page {
				page = last
				opt.Offset = task.Offset(page, uc.pageSize)
				tasks, total, err = r.ListTasks(ctx, opt)
				if err != nil {
					uc.l.Errorf(ctx, "uc.List ListTasks retry user_id=%d page=%d: %v", u.ID, page, err)
					return err
				}
			}
		}

		out = task.ListOutput{
			Tasks:      tasks,
			Total:      total,
			Page:       task.ClampPage(page, total, uc.pageSize),
			TotalPages: task.TotalPages(total, uc.pageSize),
			PageSize:   uc.pageSize,
		}
		return nil
	})
	if err != nil {
		return task.ListOutput{}, err
	}
	return out, nil
}

func normalizeListInput(in task.ListInput) task.ListInput {
	if !in.Status.Valid() {
		in.Status = model.StatusOpen
	}
	if !in.Priority.Valid() {
		in.Priority = model.PriorityFilterAll
	}
	if !in.Date.Valid() {
		in.Date = model.DateFilterAll
	}
	if in.Page < 1 {
		in.Page = 1
	}
	return in
}
