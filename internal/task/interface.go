package task

import (
	"context"
	"time"

	"dotask-bot/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every method resolves the caller from sc and only touches that caller's tasks.
type UseCase interface {
	// Stats returns the caller's open and done counts.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// GetTask reads one of the caller's tasks without touching the user row.
	GetTask(ctx context.Context, sc model.Scope, taskID int64) (model.Task, error)

	SetDone(ctx context.Context, sc model.Scope, taskID int64, done bool) error
	Delete(ctx context.Context, sc model.Scope, taskID int64) error
	UpdateContent(ctx context.Context, sc model.Scope, taskID int64, content string) error
	UpdatePriority(ctx context.Context, sc model.Scope, taskID int64, priority model.Priority) error
	Snooze(ctx context.Context, sc model.Scope, taskID int64, minutes int) error

	// ParseDueDate turns user input into a due instant; nil means "no date".
	ParseDueDate(ctx context.Context, input string) (*time.Time, error)
}
