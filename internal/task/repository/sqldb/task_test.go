package sqldb_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
	"dotask-bot/internal/task/repository/sqldb"
	"dotask-bot/pkg/log"
)

// Wednesday afternoon.
var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqldb.Migrate(context.Background(), db, sqldb.DialectSQLite))
	return sqldb.New(db, sqldb.DialectSQLite, log.NewNop())
}

func newUser(t *testing.T, r repository.Repository, telegramID int64) model.User {
	t.Helper()
	u, err := r.UpsertUser(context.Background(), repository.UpsertUserOptions{
		TelegramID: telegramID,
		FullName:   fmt.Sprintf("User %d", telegramID),
		Language:   "en",
		Now:        testNow,
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	return u
}

func newTask(t *testing.T, r repository.Repository, userID int64, content string, due *time.Time, created time.Time) model.Task {
	t.Helper()
	tk, err := r.CreateTask(context.Background(), repository.CreateTaskOptions{
		UserID:  userID,
		Content: content,
		DueDate: due,
		Now:     created,
	})
	require.NoError(t, err)
	return tk
}

func ptr[T any](v T) *T { return &v }

func listOpen(t *testing.T, r repository.Repository, userID int64, limit, offset int) ([]model.Task, int) {
	t.Helper()
	tasks, total, err := r.ListTasks(context.Background(), repository.ListTasksOptions{
		UserID:   userID,
		Done:     ptr(false),
		Priority: model.PriorityFilterAll,
		Date:     model.DateFilterAll,
		Now:      testNow,
		Location: time.UTC,
		Limit:    limit,
		Offset:   offset,
	})
	require.NoError(t, err)
	return tasks, total
}

func TestUpsertUser(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	missing, err := r.GetUserByTelegramID(ctx, 777)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	first := newUser(t, r, 777)

	second, err := r.UpsertUser(ctx, repository.UpsertUserOptions{
		TelegramID: 777,
		FullName:   "Renamed",
		Username:   "renamed",
		Language:   "fa",
		Now:        testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed", second.FullName)
	assert.Equal(t, "fa", second.Language)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	got, err := r.GetUserByTelegramID(ctx, 777)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestCreateTaskDefaults(t *testing.T) {
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	tk := newTask(t, r, u.ID, "  Buy milk  ", nil, testNow)

	assert.Equal(t, "Buy milk", tk.Content)
	assert.Equal(t, model.PriorityMedium, tk.Priority)
	assert.False(t, tk.IsDone)
	assert.Nil(t, tk.DueDate)
	assert.Nil(t, tk.DoneAt)

	tasks, total := listOpen(t, r, u.ID, 5, 0)
	require.Equal(t, 1, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, tk, tasks[0])
}

func TestCreateTaskNormalizesDueDateToUTC(t *testing.T) {
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	tehran := time.FixedZone("IRST", 3*3600+1800)
	due := time.Date(2025, 1, 1, 13, 30, 0, 0, tehran)
	tk := newTask(t, r, u.ID, "Call mom", &due, testNow)

	require.NotNil(t, tk.DueDate)
	assert.Equal(t, time.UTC, tk.DueDate.Location())
	assert.True(t, tk.DueDate.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)))
}

func TestCreateTaskValidation(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	_, err := r.CreateTask(ctx, repository.CreateTaskOptions{UserID: u.ID, Content: " ab "})
	require.ErrorIs(t, err, task.ErrContentTooShort)

	_, err = r.CreateTask(ctx, repository.CreateTaskOptions{UserID: u.ID, Content: "valid", Priority: "URGENT"})
	require.ErrorIs(t, err, task.ErrInvalidPriority)

	_, total := listOpen(t, r, u.ID, 5, 0)
	assert.Zero(t, total)
}

func TestListTasksPagination(t *testing.T) {
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	for i := 0; i < 7; i++ {
		newTask(t, r, u.ID, fmt.Sprintf("task %d", i), nil, testNow.Add(time.Duration(i)*time.Minute))
	}

	page1, total := listOpen(t, r, u.ID, 5, 0)
	assert.Equal(t, 7, total)
	assert.Len(t, page1, 5)
	assert.Equal(t, "task 6", page1[0].Content, "newest first among undated tasks")

	page2, total := listOpen(t, r, u.ID, 5, 5)
	assert.Equal(t, 7, total)
	assert.Len(t, page2, 2)
	assert.Equal(t, "task 0", page2[1].Content)

	page3, total := listOpen(t, r, u.ID, 5, 10)
	assert.Equal(t, 7, total)
	assert.Empty(t, page3)
}

func TestListTasksOrdering(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	late := testNow.Add(48 * time.Hour)
	early := testNow.Add(2 * time.Hour)

	undatedOld := newTask(t, r, u.ID, "undated old", nil, testNow.Add(-time.Hour))
	dueLate := newTask(t, r, u.ID, "due late", &late, testNow)
	undatedNew := newTask(t, r, u.ID, "undated new", nil, testNow)
	dueEarly := newTask(t, r, u.ID, "due early", &early, testNow.Add(-2*time.Hour))
	doneEarly := newTask(t, r, u.ID, "done", &early, testNow)

	ok, err := r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: u.ID, TaskID: doneEarly.ID, Done: true, Now: testNow})
	require.NoError(t, err)
	require.True(t, ok)

	tasks, total, err := r.ListTasks(ctx, repository.ListTasksOptions{
		UserID: u.ID, Priority: model.PriorityFilterAll, Date: model.DateFilterAll, Now: testNow, Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 5, total)

	var ids []int64
	for _, tk := range tasks {
		ids = append(ids, tk.ID)
	}
	assert.Equal(t, []int64{dueEarly.ID, dueLate.ID, undatedNew.ID, undatedOld.ID, doneEarly.ID}, ids)
}

func TestListTasksFilters(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	todayLater := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	newTask(t, r, u.ID, "today", &todayLater, testNow)
	newTask(t, r, u.ID, "yesterday", &yesterday, testNow)
	newTask(t, r, u.ID, "friday", &friday, testNow)
	newTask(t, r, u.ID, "next month", &nextMonth, testNow)
	undated := newTask(t, r, u.ID, "undated", nil, testNow)

	_, err := r.UpdateTaskPriority(ctx, repository.UpdateTaskPriorityOptions{
		UserID: u.ID, TaskID: undated.ID, Priority: model.PriorityHigh, Now: testNow,
	})
	require.NoError(t, err)

	contents := func(pf model.PriorityFilter, df model.DateFilter) []string {
		tasks, total, err := r.ListTasks(ctx, repository.ListTasksOptions{
			UserID: u.ID, Done: ptr(false), Priority: pf, Date: df, Now: testNow, Location: time.UTC, Limit: 10,
		})
		require.NoError(t, err)
		require.Len(t, tasks, total)
		out := make([]string, 0, len(tasks))
		for _, tk := range tasks {
			out = append(out, tk.Content)
		}
		return out
	}

	assert.Equal(t, []string{"today"}, contents(model.PriorityFilterAll, model.DateFilterToday))
	assert.Equal(t, []string{"yesterday", "today", "friday"}, contents(model.PriorityFilterAll, model.DateFilterThisWeek))
	assert.Equal(t, []string{"yesterday"}, contents(model.PriorityFilterAll, model.DateFilterOverdue))
	assert.Equal(t, []string{"undated"}, contents(model.PriorityFilterAll, model.DateFilterNoDate))
	assert.Len(t, contents(model.PriorityFilterAll, model.DateFilterAll), 5)

	assert.Equal(t, []string{"undated"}, contents(model.PriorityFilterHigh, model.DateFilterAll))
	assert.Len(t, contents(model.PriorityFilterMedium, model.DateFilterAll), 4)
	assert.Empty(t, contents(model.PriorityFilterLow, model.DateFilterAll))
	assert.Empty(t, contents(model.PriorityFilterHigh, model.DateFilterToday))
}

func TestListTasksTodayUsesLocation(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	// 22:30 UTC on May 1 is already May 2 in UTC+3.
	plus3 := time.FixedZone("UTC+3", 3*3600)
	due := time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC)
	newTask(t, r, u.ID, "late evening", &due, testNow)

	count := func(loc *time.Location) int {
		_, total, err := r.ListTasks(ctx, repository.ListTasksOptions{
			UserID: u.ID, Done: ptr(false), Priority: model.PriorityFilterAll, Date: model.DateFilterToday,
			Now: testNow, Location: loc, Limit: 5,
		})
		require.NoError(t, err)
		return total
	}

	assert.Equal(t, 1, count(time.UTC))
	assert.Equal(t, 0, count(plus3))
}

func TestSetTaskDoneIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)
	tk := newTask(t, r, u.ID, "Write report", nil, testNow)

	ok, err := r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: u.ID, TaskID: tk.ID, Done: true, Now: testNow})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: u.ID, TaskID: tk.ID, Done: true, Now: testNow.Add(time.Hour)})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.True(t, got.IsDone)
	require.NotNil(t, got.DoneAt)
	assert.True(t, got.DoneAt.Equal(testNow), "second mark must keep the first done_at")

	ok, err = r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: u.ID, TaskID: tk.ID, Done: false, Now: testNow})
	require.NoError(t, err)
	require.True(t, ok)

	got, err = r.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.False(t, got.IsDone)
	assert.Nil(t, got.DoneAt)
}

func TestDoneListing(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)
	tk := newTask(t, r, u.ID, "Pay rent", nil, testNow)

	_, err := r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: u.ID, TaskID: tk.ID, Done: true, Now: testNow})
	require.NoError(t, err)

	done, total, err := r.ListTasks(ctx, repository.ListTasksOptions{
		UserID: u.ID, Done: ptr(true), Priority: model.PriorityFilterAll, Date: model.DateFilterAll, Now: testNow, Limit: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, done, 1)
	assert.Equal(t, tk.ID, done[0].ID)

	_, total = listOpen(t, r, u.ID, 5, 0)
	assert.Zero(t, total)

	open, doneCount, err := r.CountTasksByStatus(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, open)
	assert.Equal(t, 1, doneCount)
}

func TestSnoozeTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	due := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	dated := newTask(t, r, u.ID, "Dentist", &due, testNow)
	undated := newTask(t, r, u.ID, "Read book", nil, testNow)

	ok, err := r.SnoozeTask(ctx, repository.SnoozeTaskOptions{UserID: u.ID, TaskID: dated.ID, Delta: time.Hour, Now: testNow})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: dated.ID})
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)), "got %v", got.DueDate)

	ok, err = r.SnoozeTask(ctx, repository.SnoozeTaskOptions{UserID: u.ID, TaskID: undated.ID, Delta: 15 * time.Minute, Now: testNow})
	require.NoError(t, err)
	require.True(t, ok)

	got, err = r.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: undated.ID})
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(testNow.Add(15*time.Minute)), "got %v", got.DueDate)

	ok, err = r.SnoozeTask(ctx, repository.SnoozeTaskOptions{UserID: u.ID, TaskID: 9999, Delta: time.Hour, Now: testNow})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateTaskContentValidation(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)
	tk := newTask(t, r, u.ID, "Original text", nil, testNow)

	ok, err := r.UpdateTaskContent(ctx, repository.UpdateTaskContentOptions{UserID: u.ID, TaskID: tk.ID, Content: "ab", Now: testNow})
	require.ErrorIs(t, err, task.ErrContentTooShort)
	assert.False(t, ok)

	got, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.Equal(t, "Original text", got.Content)

	ok, err = r.UpdateTaskContent(ctx, repository.UpdateTaskContentOptions{UserID: u.ID, TaskID: tk.ID, Content: " New text ", Now: testNow})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = r.GetTask(ctx, repository.GetTaskOptions{UserID: u.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.Equal(t, "New text", got.Content)
}

func TestOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	owner := newUser(t, r, 1)
	intruder := newUser(t, r, 2)

	due := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	tk := newTask(t, r, owner.ID, "Private task", &due, testNow)

	mutations := map[string]func() (bool, error){
		"SetTaskDone": func() (bool, error) {
			return r.SetTaskDone(ctx, repository.SetTaskDoneOptions{UserID: intruder.ID, TaskID: tk.ID, Done: true, Now: testNow})
		},
		"DeleteTask": func() (bool, error) {
			return r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: intruder.ID, TaskID: tk.ID})
		},
		"UpdateTaskContent": func() (bool, error) {
			return r.UpdateTaskContent(ctx, repository.UpdateTaskContentOptions{UserID: intruder.ID, TaskID: tk.ID, Content: "hijacked", Now: testNow})
		},
		"UpdateTaskPriority": func() (bool, error) {
			return r.UpdateTaskPriority(ctx, repository.UpdateTaskPriorityOptions{UserID: intruder.ID, TaskID: tk.ID, Priority: model.PriorityLow, Now: testNow})
		},
		"SnoozeTask": func() (bool, error) {
			return r.SnoozeTask(ctx, repository.SnoozeTaskOptions{UserID: intruder.ID, TaskID: tk.ID, Delta: time.Hour, Now: testNow})
		},
	}

	for name, fn := range mutations {
		t.Run(name, func(t *testing.T) {
			ok, err := fn()
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	hidden, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: intruder.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.Zero(t, hidden.ID)

	got, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: owner.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.Equal(t, tk, got)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)
	tk := newTask(t, r, u.ID, "Throw away", nil, testNow)

	ok, err := r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: u.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: u.ID, TaskID: tk.ID})
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports not found")
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	u := newUser(t, r, 1)

	errBoom := errors.New("boom")
	err := r.WithTx(ctx, func(tx repository.Repository) error {
		_, err := tx.CreateTask(ctx, repository.CreateTaskOptions{UserID: u.ID, Content: "rolled back", Now: testNow})
		require.NoError(t, err)
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, total := listOpen(t, r, u.ID, 5, 0)
	assert.Zero(t, total)

	err = r.WithTx(ctx, func(tx repository.Repository) error {
		_, err := tx.CreateTask(ctx, repository.CreateTaskOptions{UserID: u.ID, Content: "committed", Now: testNow})
		return err
	})
	require.NoError(t, err)

	_, total = listOpen(t, r, u.ID, 5, 0)
	assert.Equal(t, 1, total)
}
