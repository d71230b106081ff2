package sqldb

import (
	"strings"
	"time"

	"dotask-bot/internal/model"
	repo "dotask-bot/internal/task/repository"
	"dotask-bot/pkg/datemath"
)

const taskColumns = `id, user_id, content, due_date, priority, is_done, created_at, updated_at, done_at`

// Open before done, dated before undated, earliest due first, newest first.
const taskOrder = `is_done ASC, CASE WHEN due_date IS NULL THEN 1 ELSE 0 END ASC, due_date ASC, created_at DESC, id DESC`

// buildListConditions builds the WHERE clause + args shared by the count and page queries.
func (r *implRepository) buildListConditions(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Done != nil {
		conditions = append(conditions, "is_done = ?")
		args = append(args, *opt.Done)
	}

	if p, ok := opt.Priority.Priority(); ok {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(p))
	}

	loc := opt.Location
	if loc == nil {
		loc = time.UTC
	}
	now := nowOr(opt.Now)

	switch opt.Date {
	case model.DateFilterToday:
		w := datemath.Today(now, loc)
		conditions = append(conditions, "due_date >= ? AND due_date < ?")
		args = append(args, toUnix(w.From), toUnix(w.To))
	case model.DateFilterThisWeek:
		w := datemath.ThisWeek(now, loc)
		conditions = append(conditions, "due_date >= ? AND due_date < ?")
		args = append(args, toUnix(w.From), toUnix(w.To))
	case model.DateFilterOverdue:
		conditions = append(conditions, "due_date < ?")
		args = append(args, toUnix(now))
	case model.DateFilterNoDate:
		conditions = append(conditions, "due_date IS NULL")
	case model.DateFilterAll:
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full SELECT with ORDER + LIMIT + OFFSET for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildListConditions(opt)

	var sb strings.Builder
	sb.WriteString("SELECT " + taskColumns + " FROM tasks WHERE " + where)
	sb.WriteString(" ORDER BY " + taskOrder)

	if opt.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			sb.WriteString(" OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return r.dialect.rebind(sb.String()), args
}

// buildCountQuery builds the COUNT(*) for the same filters, without pagination.
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildListConditions(opt)
	return r.dialect.rebind("SELECT COUNT(*) FROM tasks WHERE " + where), args
}
