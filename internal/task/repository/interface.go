package repository

import (
	"context"

	"dotask-bot/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	UserRepository
	TaskRepository

	// WithTx runs fn against a transactional Repository. The transaction
	// commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(Repository) error) error
}

// UserRepository defines data access for the User entity.
type UserRepository interface {
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (model.User, error)
	// GetUserByTelegramID returns a zero User (ID == 0) when absent.
	GetUserByTelegramID(ctx context.Context, telegramID int64) (model.User, error)
}

// TaskRepository defines data access for the Task entity.
// Every task operation is scoped by owner in the same statement.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns a zero Task (ID == 0) when absent or not owned.
	GetTask(ctx context.Context, opt GetTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	CountTasksByStatus(ctx context.Context, userID int64) (open int, done int, err error)

	// The bool results report whether a row was affected.
	SetTaskDone(ctx context.Context, opt SetTaskDoneOptions) (bool, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
	UpdateTaskContent(ctx context.Context, opt UpdateTaskContentOptions) (bool, error)
	UpdateTaskPriority(ctx context.Context, opt UpdateTaskPriorityOptions) (bool, error)
	SnoozeTask(ctx context.Context, opt SnoozeTaskOptions) (bool, error)
}
