package repository

import (
	"time"

	"dotask-bot/internal/model"
)

// UpsertUserOptions holds the fields refreshed on every interaction.
type UpsertUserOptions struct {
	TelegramID int64
	FullName   string
	Username   string
	Language   string
	Now        time.Time
}

// CreateTaskOptions holds parameters for inserting a Task.
// Content is normalized by the repository; an empty Priority means MEDIUM.
type CreateTaskOptions struct {
	UserID   int64
	Content  string
	DueDate  *time.Time
	Priority model.Priority
	Now      time.Time
}

type GetTaskOptions struct {
	UserID int64
	TaskID int64
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Done == nil lists both open and done tasks.
type ListTasksOptions struct {
	UserID   int64
	Done     *bool
	Priority model.PriorityFilter
	Date     model.DateFilter
	Now      time.Time
	Location *time.Location
	Limit    int
	Offset   int
}

type SetTaskDoneOptions struct {
	UserID int64
	TaskID int64
	Done   bool
	Now    time.Time
}

type DeleteTaskOptions struct {
	UserID int64
	TaskID int64
}

type UpdateTaskContentOptions struct {
	UserID  int64
	TaskID  int64
	Content string
	Now     time.Time
}

type UpdateTaskPriorityOptions struct {
	UserID   int64
	TaskID   int64
	Priority model.Priority
	Now      time.Time
}

// SnoozeTaskOptions moves the due date to (due or Now) + Delta.
type SnoozeTaskOptions struct {
	UserID int64
	TaskID int64
	Delta  time.Duration
	Now    time.Time
}
