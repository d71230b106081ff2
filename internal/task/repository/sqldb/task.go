package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	repo "dotask-bot/internal/task/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateTask inserts a new Task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	content, ok := model.NormalizeContent(opt.Content)
	if !ok {
		return model.Task{}, task.ErrContentTooShort
	}

	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	query := r.dialect.rebind(`
		INSERT INTO tasks (user_id, content, due_date, priority, is_done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + taskColumns)

	now := toUnix(nowOr(opt.Now))
	t, err := scanTask(r.q.QueryRowContext(ctx, query,
		opt.UserID, content, toNullUnix(opt.DueDate), string(priority), false, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s user_id=%d: %v", r.dsn("CreateTask"), opt.UserID, err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask returns a zero-value Task when not found or not owned by the user.
func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.Task, error) {
	query := r.dialect.rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`)

	t, err := scanTask(r.q.QueryRowContext(ctx, query, opt.TaskID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s user_id=%d task_id=%d: %v", r.dsn("GetTask"), opt.UserID, opt.TaskID, err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns one page of the user's tasks and the total matching count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countQuery, countArgs := r.buildCountQuery(opt)
	var total int
	if err := r.q.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count user_id=%d: %v", r.dsn("ListTasks"), opt.UserID, err)
		return nil, 0, repo.ErrFailedToList
	}
	if total == 0 {
		return nil, 0, nil
	}

	// 2. Fetch page
	query, args := r.buildListQuery(opt)
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s user_id=%d: %v", r.dsn("ListTasks"), opt.UserID, err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan user_id=%d: %v", r.dsn("ListTasks"), opt.UserID, err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows user_id=%d: %v", r.dsn("ListTasks"), opt.UserID, err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// CountTasksByStatus returns the user's open and done counts.
func (r *implRepository) CountTasksByStatus(ctx context.Context, userID int64) (int, int, error) {
	query := r.dialect.rebind(`SELECT is_done, COUNT(*) FROM tasks WHERE user_id = ? GROUP BY is_done`)

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s user_id=%d: %v", r.dsn("CountTasksByStatus"), userID, err)
		return 0, 0, repo.ErrFailedToCount
	}
	defer rows.Close()

	var open, done int
	for rows.Next() {
		var (
			isDone bool
			n      int
		)
		if err := rows.Scan(&isDone, &n); err != nil {
			r.l.Errorf(ctx, "%s scan user_id=%d: %v", r.dsn("CountTasksByStatus"), userID, err)
			return 0, 0, repo.ErrFailedToCount
		}
		if isDone {
			done = n
		} else {
			open = n
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, repo.ErrFailedToCount
	}
	return open, done, nil
}

// SetTaskDone marks or unmarks a task. Marking an already done task keeps its done_at.
func (r *implRepository) SetTaskDone(ctx context.Context, opt repo.SetTaskDoneOptions) (bool, error) {
	now := toUnix(nowOr(opt.Now))

	var (
		query string
		args  []any
	)
	if opt.Done {
		query = `UPDATE tasks SET is_done = ?, done_at = COALESCE(done_at, ?), updated_at = ? WHERE id = ? AND user_id = ?`
		args = []any{true, now, now, opt.TaskID, opt.UserID}
	} else {
		query = `UPDATE tasks SET is_done = ?, done_at = NULL, updated_at = ? WHERE id = ? AND user_id = ?`
		args = []any{false, now, opt.TaskID, opt.UserID}
	}

	return r.execAffected(ctx, "SetTaskDone", opt.UserID, opt.TaskID, r.dialect.rebind(query), args...)
}

// DeleteTask hard-deletes a task owned by the user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	query := r.dialect.rebind(`DELETE FROM tasks WHERE id = ? AND user_id = ?`)

	ok, err := r.execAffected(ctx, "DeleteTask", opt.UserID, opt.TaskID, query, opt.TaskID, opt.UserID)
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return ok, nil
}

// UpdateTaskContent replaces the content, validated like CreateTask.
func (r *implRepository) UpdateTaskContent(ctx context.Context, opt repo.UpdateTaskContentOptions) (bool, error) {
	content, ok := model.NormalizeContent(opt.Content)
	if !ok {
		return false, task.ErrContentTooShort
	}

	query := r.dialect.rebind(`UPDATE tasks SET content = ?, updated_at = ? WHERE id = ? AND user_id = ?`)
	return r.execAffected(ctx, "UpdateTaskContent", opt.UserID, opt.TaskID, query,
		content, toUnix(nowOr(opt.Now)), opt.TaskID, opt.UserID)
}

// UpdateTaskPriority sets the priority of a task owned by the user.
func (r *implRepository) UpdateTaskPriority(ctx context.Context, opt repo.UpdateTaskPriorityOptions) (bool, error) {
	if !opt.Priority.Valid() {
		return false, task.ErrInvalidPriority
	}

	query := r.dialect.rebind(`UPDATE tasks SET priority = ?, updated_at = ? WHERE id = ? AND user_id = ?`)
	return r.execAffected(ctx, "UpdateTaskPriority", opt.UserID, opt.TaskID, query,
		string(opt.Priority), toUnix(nowOr(opt.Now)), opt.TaskID, opt.UserID)
}

// SnoozeTask sets due_date to (due_date or now) + delta in a single statement.
func (r *implRepository) SnoozeTask(ctx context.Context, opt repo.SnoozeTaskOptions) (bool, error) {
	now := toUnix(nowOr(opt.Now))
	delta := int64(opt.Delta.Seconds())

	query := r.dialect.rebind(`UPDATE tasks SET due_date = COALESCE(due_date, ?) + ?, updated_at = ? WHERE id = ? AND user_id = ?`)
	return r.execAffected(ctx, "SnoozeTask", opt.UserID, opt.TaskID, query,
		now, delta, now, opt.TaskID, opt.UserID)
}

// execAffected runs a scoped mutation and reports whether any row matched.
func (r *implRepository) execAffected(ctx context.Context, method string, userID, taskID int64, query string, args ...any) (bool, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s user_id=%d task_id=%d: %v", r.dsn(method), userID, taskID, err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected user_id=%d task_id=%d: %v", r.dsn(method), userID, taskID, err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		priority             string
		dueDate, doneAt      sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Content, &dueDate, &priority, &t.IsDone, &createdAt, &updatedAt, &doneAt); err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.DueDate = fromNullUnix(dueDate)
	t.DoneAt = fromNullUnix(doneAt)
	t.CreatedAt = fromUnix(createdAt)
	t.UpdatedAt = fromUnix(updatedAt)
	return t, nil
}
